// Package notes turns raw MIDI events into discrete notes with absolute
// timing and offers the cleanup helpers the plot is built from.
package notes

import (
	"fmt"
	"sort"
)

// Note is a resolved, sounding note
type Note struct {
	Track     int
	TrackName string
	StartTick int64
	Length    int64 // ticks, >= 0
	Pitch     uint8
	Channel   uint8
	Velocity  uint8
}

// EndTick returns the tick where the note stops sounding.
func (n Note) EndTick() int64 {
	return n.StartTick + n.Length
}

func (n Note) String() string {
	return fmt.Sprintf("track=%d %q start=%d len=%d pitch=%d", n.Track, n.TrackName, n.StartTick, n.Length, n.Pitch)
}

// SortByStart orders notes earliest first. Ties are broken by track then
// pitch so the result does not depend on extraction order.
func SortByStart(ns []Note) {
	sort.SliceStable(ns, func(i, j int) bool {
		a, b := ns[i], ns[j]
		if a.StartTick != b.StartTick {
			return a.StartTick < b.StartTick
		}
		if a.Track != b.Track {
			return a.Track < b.Track
		}
		return a.Pitch < b.Pitch
	})
}
