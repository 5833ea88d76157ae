package render

import (
	"errors"
	"fmt"

	"go-radial/theme"
)

const (
	DefaultInnerRadius  = 25.0
	DefaultRadiusSpan   = 75.0
	DefaultMaxPointSize = 4.0
	DefaultHalfExtent   = 105.0
	DefaultPlotRadius   = 100.0

	DefaultFromColor = "#1d4877"
	DefaultToColor   = "#f68838"
)

// Config holds the geometry and colours of a plot. The zero value is not
// usable, start from DefaultConfig.
type Config struct {
	InnerRadius  float64 // radius of the lowest pitch
	RadiusSpan   float64 // distance from lowest to highest pitch
	MaxPointSize float64 // circle radius of the longest note
	HalfExtent   float64 // viewBox runs from -HalfExtent to +HalfExtent
	PlotRadius   float64 // outer edge of the plotted ring
	Palette      *theme.Palette
}

// DefaultConfig returns the standard plot layout with a two colour gradient.
func DefaultConfig() Config {
	p, err := theme.NewGradient(DefaultFromColor, DefaultToColor)
	if err != nil {
		panic(fmt.Sprintf("default gradient: %v", err))
	}
	return Config{
		InnerRadius:  DefaultInnerRadius,
		RadiusSpan:   DefaultRadiusSpan,
		MaxPointSize: DefaultMaxPointSize,
		HalfExtent:   DefaultHalfExtent,
		PlotRadius:   DefaultPlotRadius,
		Palette:      p,
	}
}

// Validate checks the ring fits inside the plot and the plot inside the
// viewBox.
func (c Config) Validate() error {
	switch {
	case c.Palette == nil || len(c.Palette.Colors) == 0:
		return errors.New("palette has no colours")
	case c.InnerRadius < 0 || c.RadiusSpan < 0 || c.MaxPointSize < 0:
		return errors.New("radii must not be negative")
	case c.InnerRadius+c.RadiusSpan > c.PlotRadius:
		return fmt.Errorf("ring %g+%g exceeds plot radius %g", c.InnerRadius, c.RadiusSpan, c.PlotRadius)
	case c.PlotRadius > c.HalfExtent:
		return fmt.Errorf("plot radius %g exceeds viewBox half extent %g", c.PlotRadius, c.HalfExtent)
	}
	return nil
}
