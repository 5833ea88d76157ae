package midi

import "fmt"

// Kind identifies which MIDI message a RawEvent came from
type Kind uint8

const (
	NoteOn Kind = iota
	NoteOff
	TrackName
)

func (k Kind) String() string {
	switch k {
	case NoteOn:
		return "note-on"
	case NoteOff:
		return "note-off"
	case TrackName:
		return "track-name"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// RawEvent is one note or track-name event with its absolute tick.
// Pitch and Velocity are only meaningful for note events, Name only for
// TrackName.
type RawEvent struct {
	Track    int
	Tick     int64
	Kind     Kind
	Channel  uint8
	Pitch    uint8
	Velocity uint8
	Name     string
}

// IsNoteEnd reports whether the event closes a sounding note.
// A note-on with velocity 0 is a note-off.
func (e RawEvent) IsNoteEnd() bool {
	return e.Kind == NoteOff || (e.Kind == NoteOn && e.Velocity == 0)
}

// IsNoteStart reports whether the event opens a note.
func (e RawEvent) IsNoteStart() bool {
	return e.Kind == NoteOn && e.Velocity > 0
}

func (e RawEvent) String() string {
	switch e.Kind {
	case TrackName:
		return fmt.Sprintf("track=%d tick=%d %s %q", e.Track, e.Tick, e.Kind, e.Name)
	case NoteOn:
		return fmt.Sprintf("track=%d tick=%d %s ch=%d key=%d vel=%d", e.Track, e.Tick, e.Kind, e.Channel, e.Pitch, e.Velocity)
	default:
		return fmt.Sprintf("track=%d tick=%d %s ch=%d key=%d", e.Track, e.Tick, e.Kind, e.Channel, e.Pitch)
	}
}
