// Package render maps notes onto a circular plot and writes it as SVG.
//
// Time runs clockwise from 12 o'clock, pitch runs outward from the inner
// radius, note length sets the circle size and pitch picks the colour.
package render

import (
	"math"

	"go-radial/notes"
	"go-radial/theme"
)

// Circle is one plotted note
type Circle struct {
	X, Y float64
	R    float64
	Fill string
	Note notes.Note
}

// Layout computes one circle per note, in input order. Every figure is
// normalised against the whole set so the notes must all be passed at once.
func Layout(ns []notes.Note, cfg Config) []Circle {
	if len(ns) == 0 {
		return nil
	}

	st := notes.Summarize(ns)
	palette := cfg.Palette.Steps(st.PitchRange() + 1)

	circles := make([]Circle, len(ns))
	for i, n := range ns {
		angle := -math.Pi/2 + 2*math.Pi*float64(n.StartTick)/float64(st.MaxTime+1)
		radius := pitchRadius(n.Pitch, st, cfg)

		circles[i] = Circle{
			X:    round(radius*math.Cos(angle), 1),
			Y:    round(radius*math.Sin(angle), 1),
			R:    round(pointSize(n.Length, st.MaxLength, cfg.MaxPointSize), 2),
			Fill: pitchColor(n.Pitch, st, palette).Hex(),
			Note: n,
		}
	}
	return circles
}

// pitchRadius puts the lowest pitch on the inner radius and the highest on
// the outer edge. A single-pitch set sits on the middle of the ring.
func pitchRadius(pitch uint8, st notes.Stats, cfg Config) float64 {
	span := st.PitchRange()
	if span == 0 {
		return cfg.InnerRadius + cfg.RadiusSpan/2
	}
	return cfg.InnerRadius + cfg.RadiusSpan*float64(int(pitch)-int(st.MinPitch))/float64(span)
}

// pointSize scales area with length.
func pointSize(length, maxLength int64, maxSize float64) float64 {
	if maxLength <= 0 || length <= 0 {
		return 0
	}
	return maxSize * math.Sqrt(float64(length)/float64(maxLength))
}

func pitchColor(pitch uint8, st notes.Stats, palette []theme.RGB) theme.RGB {
	i := int(pitch) - int(st.MinPitch)
	return palette[min(max(i, 0), len(palette)-1)]
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	v = math.Round(v*scale) / scale
	if v == 0 {
		return 0 // no "-0"
	}
	return v
}
