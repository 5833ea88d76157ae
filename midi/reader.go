package midi

import (
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/text/encoding"
)

// File is a decoded SMF reduced to the events the plot needs
type File struct {
	Format          uint16
	TicksPerQuarter int // 0 for SMPTE time formats
	Tracks          int
	Events          []RawEvent
}

type readOptions struct {
	names encoding.Encoding
}

// ReadOption configures Read
type ReadOption func(*readOptions)

// WithTextEncoding sets the fallback encoding for track names that are not
// valid UTF-8. Pass nil to keep the raw bytes.
func WithTextEncoding(enc encoding.Encoding) ReadOption {
	return func(o *readOptions) { o.names = enc }
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string, opts ...ReadOption) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Read decodes a Standard MIDI File. Only note-on, note-off and track-name
// messages survive; ticks are converted from deltas to absolute positions
// within each track. Events come out track by track in file order.
func Read(r io.Reader, opts ...ReadOption) (*File, error) {
	o := readOptions{}
	if enc, err := LookupEncoding(DefaultTextEncoding); err == nil {
		o.names = enc
	}
	for _, opt := range opts {
		opt(&o)
	}

	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMIDI, err)
	}

	file := &File{
		Format: s.Format(),
		Tracks: len(s.Tracks),
	}
	if tf, ok := s.TimeFormat.(smf.MetricTicks); ok {
		file.TicksPerQuarter = int(tf)
	}

	for i, track := range s.Tracks {
		file.Events = append(file.Events, trackEvents(i, track, o.names)...)
	}
	return file, nil
}

func trackEvents(index int, track smf.Track, names encoding.Encoding) []RawEvent {
	var events []RawEvent
	var tick int64

	for _, ev := range track {
		tick += int64(ev.Delta)
		msg := ev.Message

		var ch, key, vel uint8
		var text string
		switch {
		case msg.GetNoteOn(&ch, &key, &vel):
			events = append(events, RawEvent{
				Track:    index,
				Tick:     tick,
				Kind:     NoteOn,
				Channel:  ch,
				Pitch:    key,
				Velocity: vel,
			})
		case msg.GetNoteOff(&ch, &key, &vel):
			events = append(events, RawEvent{
				Track:   index,
				Tick:    tick,
				Kind:    NoteOff,
				Channel: ch,
				Pitch:   key,
			})
		case msg.GetMetaTrackName(&text):
			events = append(events, RawEvent{
				Track: index,
				Tick:  tick,
				Kind:  TrackName,
				Name:  decodeText(text, names),
			})
		}
	}
	return events
}
