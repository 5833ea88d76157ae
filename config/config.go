// Package config loads the plot settings from ~/.config/go-radial/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"go-radial/midi"
	"go-radial/notes"
	"go-radial/render"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// ColorConfig picks the pitch colours. A palette file wins over the
// gradient endpoints.
type ColorConfig struct {
	From        string `koanf:"from"`
	To          string `koanf:"to"`
	PaletteFile string `koanf:"palette_file"`
}

// GeometryConfig mirrors render.Config
type GeometryConfig struct {
	InnerRadius  float64 `koanf:"inner_radius"`
	RadiusSpan   float64 `koanf:"radius_span"`
	MaxPointSize float64 `koanf:"max_point_size"`
	HalfExtent   float64 `koanf:"half_extent"`
	PlotRadius   float64 `koanf:"plot_radius"`
}

// ExcludeConfig drops notes of a named track, optionally only some pitches
type ExcludeConfig struct {
	Track   string `koanf:"track"`
	Pitches []int  `koanf:"pitches"`
}

// NotesConfig controls extraction and cleanup
type NotesConfig struct {
	ZeroLength        string          `koanf:"zero_length"` // keep, drop, min-one
	TrackNameEncoding string          `koanf:"track_name_encoding"`
	Exclude           []ExcludeConfig `koanf:"exclude"`
}

// Config is the main configuration structure
type Config struct {
	Colors   ColorConfig    `koanf:"colors"`
	Geometry GeometryConfig `koanf:"geometry"`
	Notes    NotesConfig    `koanf:"notes"`
	Debug    bool           `koanf:"debug"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Colors: ColorConfig{
			From: render.DefaultFromColor,
			To:   render.DefaultToColor,
		},
		Geometry: GeometryConfig{
			InnerRadius:  render.DefaultInnerRadius,
			RadiusSpan:   render.DefaultRadiusSpan,
			MaxPointSize: render.DefaultMaxPointSize,
			HalfExtent:   render.DefaultHalfExtent,
			PlotRadius:   render.DefaultPlotRadius,
		},
		Notes: NotesConfig{
			ZeroLength:        notes.KeepZeroLength.String(),
			TrackNameEncoding: midi.DefaultTextEncoding,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-radial"), nil
}

// ConfigPath returns the full path to config.yaml
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile layers the YAML file at path over the defaults and validates
// the result.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config as YAML to path
func (c *Config) SaveFile(path string) error {
	data, err := yaml.Parser().Marshal(c.toMap())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) toMap() map[string]interface{} {
	exclude := make([]interface{}, 0, len(c.Notes.Exclude))
	for _, e := range c.Notes.Exclude {
		rule := map[string]interface{}{"track": e.Track}
		if len(e.Pitches) > 0 {
			rule["pitches"] = e.Pitches
		}
		exclude = append(exclude, rule)
	}

	return map[string]interface{}{
		"colors": map[string]interface{}{
			"from":         c.Colors.From,
			"to":           c.Colors.To,
			"palette_file": c.Colors.PaletteFile,
		},
		"geometry": map[string]interface{}{
			"inner_radius":   c.Geometry.InnerRadius,
			"radius_span":    c.Geometry.RadiusSpan,
			"max_point_size": c.Geometry.MaxPointSize,
			"half_extent":    c.Geometry.HalfExtent,
			"plot_radius":    c.Geometry.PlotRadius,
		},
		"notes": map[string]interface{}{
			"zero_length":         c.Notes.ZeroLength,
			"track_name_encoding": c.Notes.TrackNameEncoding,
			"exclude":             exclude,
		},
		"debug": c.Debug,
	}
}
