package notes

import (
	"fmt"
	"strings"

	"go-radial/midi"
)

// ZeroLengthPolicy decides what happens to a note whose note-off arrives on
// the same tick as its note-on.
type ZeroLengthPolicy int

const (
	KeepZeroLength ZeroLengthPolicy = iota // emit with Length 0
	DropZeroLength                         // discard
	MinLengthOne                           // emit with Length 1
)

var policyNames = map[ZeroLengthPolicy]string{
	KeepZeroLength: "keep",
	DropZeroLength: "drop",
	MinLengthOne:   "min-one",
}

func (p ZeroLengthPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParseZeroLengthPolicy accepts "keep", "drop" or "min-one".
func ParseZeroLengthPolicy(s string) (ZeroLengthPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KeepZeroLength, nil
	}
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return KeepZeroLength, fmt.Errorf("unknown zero-length policy: %s", s)
}

// Option configures Extract
type Option func(*extractor)

// WithZeroLength sets the zero-length policy. The default keeps them.
func WithZeroLength(p ZeroLengthPolicy) Option {
	return func(x *extractor) { x.zero = p }
}

type pitchKey struct {
	track   int
	channel uint8
	pitch   uint8
}

type pending struct {
	tick     int64
	channel  uint8
	velocity uint8
}

type extractor struct {
	zero  ZeroLengthPolicy
	open  map[pitchKey][]pending
	names map[int]string
	out   []Note
}

// Extract pairs note-ons with note-offs. Pairing is per (track, channel,
// pitch) and first in, first out: a note-off closes the oldest open note-on
// of the same pitch on the same track and channel. Note-offs with nothing open are ignored and
// note-ons still open when the stream ends are dropped.
//
// Each note carries the first track name seen for its track. The result is
// in note-off order; use SortByStart for temporal order.
func Extract(events []midi.RawEvent, opts ...Option) []Note {
	x := &extractor{
		open:  make(map[pitchKey][]pending),
		names: make(map[int]string),
	}
	for _, opt := range opts {
		opt(x)
	}

	for _, ev := range events {
		if ev.Kind != midi.TrackName {
			continue
		}
		if _, seen := x.names[ev.Track]; !seen {
			x.names[ev.Track] = ev.Name
		}
	}

	for _, ev := range events {
		switch {
		case ev.IsNoteStart():
			k := pitchKey{ev.Track, ev.Channel, ev.Pitch}
			x.open[k] = append(x.open[k], pending{tick: ev.Tick, channel: ev.Channel, velocity: ev.Velocity})
		case ev.IsNoteEnd():
			x.close(ev)
		}
	}
	return x.out
}

func (x *extractor) close(ev midi.RawEvent) {
	k := pitchKey{ev.Track, ev.Channel, ev.Pitch}
	queue := x.open[k]
	if len(queue) == 0 {
		return
	}
	on := queue[0]
	if len(queue) == 1 {
		delete(x.open, k)
	} else {
		x.open[k] = queue[1:]
	}

	length := ev.Tick - on.tick
	if length <= 0 {
		switch x.zero {
		case DropZeroLength:
			return
		case MinLengthOne:
			length = 1
		default:
			length = 0
		}
	}

	x.out = append(x.out, Note{
		Track:     ev.Track,
		TrackName: x.names[ev.Track],
		StartTick: on.tick,
		Length:    length,
		Pitch:     ev.Pitch,
		Channel:   on.channel,
		Velocity:  on.velocity,
	})
}
