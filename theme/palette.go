package theme

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type RGB [3]uint8

// Hex returns the colour as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}

func (c RGB) toColorful() colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// ParseHex parses #rrggbb or #rgb
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return RGB{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// Palette is an ordered list of colour stops
type Palette struct {
	Name   string
	Colors []RGB
}

// NewGradient builds a two-stop palette from hex endpoints
func NewGradient(from, to string) (*Palette, error) {
	c0, err := ParseHex(from)
	if err != nil {
		return nil, err
	}
	c1, err := ParseHex(to)
	if err != nil {
		return nil, err
	}
	return &Palette{
		Name:   from + "-" + to,
		Colors: []RGB{c0, c1},
	}, nil
}

func LoadGPL(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := ParseGPL(f)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", path, err)
	}
	return p, nil
}

// ParseGPL reads a GIMP palette
func ParseGPL(r io.Reader) (*Palette, error) {
	p := &Palette{}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "Name:") {
			p.Name = strings.TrimSpace(strings.TrimPrefix(line, "Name:"))
			continue
		}

		// Skip headers and comments
		if line == "" || line[0] == '#' || strings.HasPrefix(line, "GIMP") || strings.HasPrefix(line, "Columns") {
			continue
		}

		// First 3 fields are R G B, the rest is a colour name
		fields := strings.Fields(line)
		if len(fields) >= 3 {
			r, err1 := strconv.ParseUint(fields[0], 10, 8)
			g, err2 := strconv.ParseUint(fields[1], 10, 8)
			b, err3 := strconv.ParseUint(fields[2], 10, 8)
			if err1 == nil && err2 == nil && err3 == nil {
				p.Colors = append(p.Colors, RGB{uint8(r), uint8(g), uint8(b)})
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("no colors found")
	}

	return p, nil
}

// Lookup returns interpolated color for normalized value 0-1
func (p *Palette) Lookup(norm float64) RGB {
	if norm <= 0 || len(p.Colors) == 1 {
		return p.Colors[0]
	}
	if norm >= 1 {
		return p.Colors[len(p.Colors)-1]
	}

	// Find the two colors to interpolate between
	pos := norm * float64(len(p.Colors)-1)
	i := int(pos)
	frac := pos - float64(i)

	c0 := p.Colors[i].toColorful()
	c1 := p.Colors[i+1].toColorful()
	return fromColorful(c0.BlendRgb(c1, frac))
}

// Steps samples n evenly spaced colours, first and last stop included.
func (p *Palette) Steps(n int) []RGB {
	if n <= 0 {
		return nil
	}
	out := make([]RGB, n)
	if n == 1 {
		out[0] = p.Colors[0]
		return out
	}
	for i := range out {
		out[i] = p.Lookup(float64(i) / float64(n-1))
	}
	return out
}

// Index returns color at specific index (no interpolation)
func (p *Palette) Index(i int) RGB {
	if i < 0 {
		return p.Colors[0]
	}
	if i >= len(p.Colors) {
		return p.Colors[len(p.Colors)-1]
	}
	return p.Colors[i]
}
