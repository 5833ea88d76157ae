package config

import (
	"fmt"

	"go-radial/midi"
	"go-radial/notes"
	"go-radial/render"
	"go-radial/theme"
)

// Validate checks every field that can be checked without touching disk.
func (c *Config) Validate() error {
	if c.Colors.PaletteFile == "" {
		if _, err := theme.NewGradient(c.Colors.From, c.Colors.To); err != nil {
			return fmt.Errorf("%w: colors: %v", ErrInvalidConfig, err)
		}
	}
	if _, err := notes.ParseZeroLengthPolicy(c.Notes.ZeroLength); err != nil {
		return fmt.Errorf("%w: notes: %v", ErrInvalidConfig, err)
	}
	if _, err := midi.LookupEncoding(c.Notes.TrackNameEncoding); err != nil {
		return fmt.Errorf("%w: notes: %v", ErrInvalidConfig, err)
	}
	for _, e := range c.Notes.Exclude {
		for _, p := range e.Pitches {
			if p < 0 || p > 127 {
				return fmt.Errorf("%w: exclude %q: pitch %d out of range", ErrInvalidConfig, e.Track, p)
			}
		}
	}

	geo := c.geometry()
	geo.Palette = &theme.Palette{Colors: []theme.RGB{{}}}
	if err := geo.Validate(); err != nil {
		return fmt.Errorf("%w: geometry: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) geometry() render.Config {
	return render.Config{
		InnerRadius:  c.Geometry.InnerRadius,
		RadiusSpan:   c.Geometry.RadiusSpan,
		MaxPointSize: c.Geometry.MaxPointSize,
		HalfExtent:   c.Geometry.HalfExtent,
		PlotRadius:   c.Geometry.PlotRadius,
	}
}

// Palette loads the palette file if one is set, otherwise builds the
// gradient.
func (c *Config) Palette() (*theme.Palette, error) {
	if c.Colors.PaletteFile != "" {
		return theme.LoadGPL(c.Colors.PaletteFile)
	}
	return theme.NewGradient(c.Colors.From, c.Colors.To)
}

// RenderConfig returns the renderer settings.
func (c *Config) RenderConfig() (render.Config, error) {
	rc := c.geometry()
	p, err := c.Palette()
	if err != nil {
		return rc, err
	}
	rc.Palette = p
	return rc, rc.Validate()
}

// ReadOptions returns the MIDI reader settings.
func (c *Config) ReadOptions() ([]midi.ReadOption, error) {
	enc, err := midi.LookupEncoding(c.Notes.TrackNameEncoding)
	if err != nil {
		return nil, err
	}
	return []midi.ReadOption{midi.WithTextEncoding(enc)}, nil
}

// ExtractOptions returns the note extractor settings.
func (c *Config) ExtractOptions() ([]notes.Option, error) {
	p, err := notes.ParseZeroLengthPolicy(c.Notes.ZeroLength)
	if err != nil {
		return nil, err
	}
	return []notes.Option{notes.WithZeroLength(p)}, nil
}

// Exclusions turns the exclude list into a note filter. Nil when empty.
func (c *Config) Exclusions() notes.Predicate {
	rules := make([]notes.Rule, 0, len(c.Notes.Exclude))
	for _, e := range c.Notes.Exclude {
		r := notes.Rule{TrackName: e.Track}
		for _, p := range e.Pitches {
			r.Pitches = append(r.Pitches, uint8(p))
		}
		rules = append(rules, r)
	}
	return notes.Exclusions(rules...)
}
