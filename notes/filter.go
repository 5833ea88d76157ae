package notes

import "slices"

// Predicate reports whether a note should be left out of the plot
type Predicate func(Note) bool

// Filter returns the notes for which exclude is false. A nil predicate
// keeps everything. The input slice is not modified.
func Filter(ns []Note, exclude Predicate) []Note {
	out := make([]Note, 0, len(ns))
	for _, n := range ns {
		if exclude != nil && exclude(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Rule excludes notes on tracks named TrackName. With no Pitches the whole
// track goes, otherwise only the listed pitches.
type Rule struct {
	TrackName string
	Pitches   []uint8
}

func (r Rule) matches(n Note) bool {
	if n.TrackName != r.TrackName {
		return false
	}
	return len(r.Pitches) == 0 || slices.Contains(r.Pitches, n.Pitch)
}

// Exclusions builds a predicate matching any of the rules.
func Exclusions(rules ...Rule) Predicate {
	if len(rules) == 0 {
		return nil
	}
	return func(n Note) bool {
		for _, r := range rules {
			if r.matches(n) {
				return true
			}
		}
		return false
	}
}
