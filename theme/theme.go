package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	Swatch rune // ■ one palette step
	Note   rune // ● a plotted note
	Rule   rune // ─ table separator
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Swatch: '■',
			Note:   '●',
			Rule:   '─',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleMuted  = 0.2
	RoleFG     = 0.5
	RoleAccent = 1.0
)

func (t *Theme) FG() lipgloss.Color {
	return t.Color(RoleFG)
}

func (t *Theme) Accent() lipgloss.Color {
	return t.Color(RoleAccent)
}

func (t *Theme) Muted() lipgloss.Color {
	return t.Color(RoleMuted)
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return lipgloss.Color(t.Palette.Lookup(norm).Hex())
}
