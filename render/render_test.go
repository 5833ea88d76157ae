package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"go-radial/notes"
	"go-radial/theme"
)

func renderString(ns []notes.Note, cfg Config) string {
	var buf bytes.Buffer
	So(Render(&buf, ns, cfg), ShouldBeNil)
	return buf.String()
}

func finite(c Circle) bool {
	for _, v := range []float64{c.X, c.Y, c.R} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func TestRenderScenario(t *testing.T) {
	Convey("Given a piano track with a low and a high note", t, func() {
		ns := []notes.Note{
			{Track: 1, TrackName: "piano", StartTick: 0, Length: 100, Pitch: 60},
			{Track: 1, TrackName: "piano", StartTick: 100, Length: 200, Pitch: 72},
		}
		cfg := DefaultConfig()

		Convey("When laid out", func() {
			circles := Layout(ns, cfg)

			Convey("Then the low pitch starts at 12 o'clock on the inner radius", func() {
				So(circles[0].X, ShouldEqual, 0.0)
				So(circles[0].Y, ShouldEqual, -25.0)
				So(circles[0].Fill, ShouldEqual, DefaultFromColor)
			})

			Convey("Then the high pitch sits on the outer edge", func() {
				c := circles[1]
				So(math.Hypot(c.X, c.Y), ShouldAlmostEqual, 100.0, 0.1)
				So(c.Fill, ShouldEqual, DefaultToColor)
			})

			Convey("Then circle size follows the square root of length", func() {
				So(circles[0].R, ShouldEqual, 2.83)
				So(circles[1].R, ShouldEqual, 4.0)
			})
		})

		Convey("When rendered", func() {
			out := renderString(ns, cfg)

			Convey("Then the document matches exactly", func() {
				want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-105 -105 210 210">
  <g>
    <circle cx="0" cy="-25" r="2.83" fill="#1d4877" style="mix-blend-mode: multiply;" />
    <circle cx="86.9" cy="49.4" r="4" fill="#f68838" style="mix-blend-mode: multiply;" />
  </g>
</svg>
`
				So(out, ShouldEqual, want)
			})

			Convey("Then rendering again gives identical bytes", func() {
				So(renderString(ns, cfg), ShouldEqual, out)
			})

			Convey("Then the input is not modified", func() {
				So(ns[0].StartTick, ShouldEqual, int64(0))
				So(ns[1].Pitch, ShouldEqual, uint8(72))
			})
		})
	})
}

func TestRenderClockwise(t *testing.T) {
	Convey("Given a note a quarter of the way through the piece", t, func() {
		ns := []notes.Note{
			{StartTick: 0, Length: 99, Pitch: 60},
			{StartTick: 25, Length: 10, Pitch: 60},
		}

		Convey("Then it is drawn at 3 o'clock", func() {
			circles := Layout(ns, DefaultConfig())
			So(circles[1].X, ShouldEqual, 62.5)
			So(circles[1].Y, ShouldEqual, 0.0)
		})
	})
}

func TestRenderDegenerate(t *testing.T) {
	Convey("Given notes that all share one pitch", t, func() {
		ns := []notes.Note{
			{StartTick: 0, Length: 10, Pitch: 64},
			{StartTick: 40, Length: 20, Pitch: 64},
			{StartTick: 80, Length: 5, Pitch: 64},
		}
		circles := Layout(ns, DefaultConfig())

		Convey("Then every radius is the middle of the ring", func() {
			for _, c := range circles {
				So(finite(c), ShouldBeTrue)
				So(math.Hypot(c.X, c.Y), ShouldAlmostEqual, 62.5, 0.1)
				So(c.Fill, ShouldEqual, DefaultFromColor)
			}
		})
	})

	Convey("Given notes that all have zero length", t, func() {
		ns := []notes.Note{
			{StartTick: 0, Pitch: 60},
			{StartTick: 0, Pitch: 70},
		}
		circles := Layout(ns, DefaultConfig())

		Convey("Then every circle has size zero", func() {
			for _, c := range circles {
				So(finite(c), ShouldBeTrue)
				So(c.R, ShouldEqual, 0.0)
			}
		})

		Convey("Then the output has no NaN", func() {
			out := renderString(ns, DefaultConfig())
			So(out, ShouldNotContainSubstring, "NaN")
			So(out, ShouldNotContainSubstring, "Inf")
			So(strings.Count(out, "<circle"), ShouldEqual, 2)
		})
	})

	Convey("Given no notes", t, func() {
		out := renderString(nil, DefaultConfig())

		Convey("Then an empty but valid document is written", func() {
			So(out, ShouldEqual, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"-105 -105 210 210\">\n  <g>\n  </g>\n</svg>\n")
			So(out, ShouldNotContainSubstring, "<circle")
		})
	})
}

func TestRenderPalette(t *testing.T) {
	Convey("Given three adjacent pitches and a black to white gradient", t, func() {
		p, err := theme.NewGradient("#000000", "#ffffff")
		So(err, ShouldBeNil)
		cfg := DefaultConfig()
		cfg.Palette = p

		circles := Layout([]notes.Note{
			{Pitch: 62, Length: 1},
			{Pitch: 60, Length: 1},
			{Pitch: 61, Length: 1},
		}, cfg)

		Convey("Then each pitch takes its own palette step", func() {
			So(circles[0].Fill, ShouldEqual, "#ffffff")
			So(circles[1].Fill, ShouldEqual, "#000000")
			So(circles[2].Fill, ShouldEqual, "#808080")
		})
	})
}

func TestConfigValidate(t *testing.T) {
	Convey("Given the default config", t, func() {
		cfg := DefaultConfig()

		Convey("Then it is valid", func() {
			So(cfg.Validate(), ShouldBeNil)
		})

		Convey("When the ring outgrows the plot radius", func() {
			cfg.RadiusSpan = 90
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("When the plot outgrows the viewBox", func() {
			cfg.PlotRadius = 200
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("When there is no palette", func() {
			cfg.Palette = nil
			So(cfg.Validate(), ShouldNotBeNil)
			So(Render(&bytes.Buffer{}, nil, cfg), ShouldNotBeNil)
		})
	})
}
