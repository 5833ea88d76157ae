// Package widgets renders terminal summaries of a plot with lipgloss.
package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-radial/notes"
	"go-radial/theme"
)

// RenderSwatch renders a single colored square
func RenderSwatch(c theme.RGB, symbol rune) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	return style.Render(string(symbol))
}

// RenderGradient renders n palette steps in a row
func RenderGradient(th *theme.Theme, n int) string {
	var out strings.Builder
	for _, c := range th.Palette.Steps(n) {
		out.WriteString(RenderSwatch(c, th.Symbols.Swatch))
	}
	return out.String()
}

// RenderLegendItem renders a single legend item: "■ Name - description"
func RenderLegendItem(th *theme.Theme, c theme.RGB, name, desc string) string {
	return fmt.Sprintf("  %s %s - %s", RenderSwatch(c, th.Symbols.Swatch), name, desc)
}

// RenderTrackTable lists each track with its note count and pitch span.
// The swatch shows the colour of the track's lowest pitch in the plot.
func RenderTrackTable(th *theme.Theme, st notes.Stats) string {
	header := lipgloss.NewStyle().Foreground(th.Accent()).Bold(true)
	dim := lipgloss.NewStyle().Foreground(th.Muted())

	steps := th.Palette.Steps(st.PitchRange() + 1)

	var lines []string
	lines = append(lines, header.Render(fmt.Sprintf("  %-5s %-24s %6s  %s", "track", "name", "notes", "pitches")))
	lines = append(lines, dim.Render("  "+strings.Repeat(string(th.Symbols.Rule), 48)))
	for _, t := range st.Tracks {
		name := t.Name
		if name == "" {
			name = "(unnamed)"
		}
		swatch := RenderSwatch(steps[int(t.MinPitch)-int(st.MinPitch)], th.Symbols.Note)
		lines = append(lines, fmt.Sprintf("  %-5d %s %6d  %s %d-%d", t.Track, FitWidth(name, 24), t.Notes, swatch, t.MinPitch, t.MaxPitch))
	}
	return strings.Join(lines, "\n")
}

// FitWidth pads s to width terminal cells, cutting it with "..." when it
// does not fit. Wide characters count as two cells.
func FitWidth(s string, width int) string {
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "..."
	}
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

// RenderSummary renders the one-line totals plus the gradient legend
func RenderSummary(th *theme.Theme, st notes.Stats, output string) string {
	fg := lipgloss.NewStyle().Foreground(th.FG())
	var out strings.Builder
	out.WriteString(fg.Render(fmt.Sprintf("%d notes, pitch %d-%d, %d ticks -> %s", st.Count, st.MinPitch, st.MaxPitch, st.MaxTime, output)))
	out.WriteString("\n")
	if st.Count > 0 {
		out.WriteString(RenderLegendItem(th, th.Palette.Lookup(0), "low", fmt.Sprintf("pitch %d, inner ring", st.MinPitch)))
		out.WriteString("\n")
		out.WriteString(RenderLegendItem(th, th.Palette.Lookup(1), "high", fmt.Sprintf("pitch %d, outer ring", st.MaxPitch)))
		out.WriteString("\n")
	}
	return out.String()
}

// RenderUsage formats commands in a friendly way
func RenderUsage(sections []Section) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, c := range sec.Commands {
			lines = append(lines, fmt.Sprintf("  %-20s %s", c.Name, c.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// Section groups related commands
type Section struct {
	Title    string
	Commands []Command
}

// Command is a single command and its description
type Command struct {
	Name string
	Desc string
}
