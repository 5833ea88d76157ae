// Package plot wires the reader, extractor and renderer into the single
// file-to-file run the command performs.
package plot

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go-radial/config"
	"go-radial/debug"
	"go-radial/midi"
	"go-radial/notes"
	"go-radial/render"
)

// Result describes a finished run
type Result struct {
	File  *midi.File
	Notes []notes.Note
	Stats notes.Stats
}

// Notes reads a MIDI stream and returns its filtered notes, earliest first.
func Notes(r io.Reader, cfg *config.Config) (*Result, error) {
	readOpts, err := cfg.ReadOptions()
	if err != nil {
		return nil, err
	}
	extractOpts, err := cfg.ExtractOptions()
	if err != nil {
		return nil, err
	}

	file, err := midi.Read(r, readOpts...)
	if err != nil {
		return nil, err
	}
	debug.Log("read", "format=%d tracks=%d tpq=%d events=%d", file.Format, file.Tracks, file.TicksPerQuarter, len(file.Events))

	ns := notes.Extract(file.Events, extractOpts...)
	extracted := len(ns)
	ns = notes.Filter(ns, cfg.Exclusions())
	notes.SortByStart(ns)
	debug.Log("extract", "notes=%d excluded=%d", len(ns), extracted-len(ns))

	return &Result{
		File:  file,
		Notes: ns,
		Stats: notes.Summarize(ns),
	}, nil
}

// Render reads a MIDI stream from r and writes the plot to w.
func Render(r io.Reader, w io.Writer, cfg *config.Config) (*Result, error) {
	rc, err := cfg.RenderConfig()
	if err != nil {
		return nil, err
	}
	res, err := Notes(r, cfg)
	if err != nil {
		return nil, err
	}
	if err := render.Render(w, res.Notes, rc); err != nil {
		return nil, err
	}
	debug.Log("render", "circles=%d maxTime=%d pitches=%d-%d", res.Stats.Count, res.Stats.MaxTime, res.Stats.MinPitch, res.Stats.MaxPitch)
	return res, nil
}

// RenderFile plots the MIDI file at input into an SVG file at output.
// Nothing is written when reading or rendering fails.
func RenderFile(input, output string, cfg *config.Config) (*Result, error) {
	in, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var buf bytes.Buffer
	res, err := Render(in, &buf, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("write svg: %w", err)
	}
	return res, nil
}
