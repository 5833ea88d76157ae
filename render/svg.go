package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"go-radial/notes"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// WriteSVG writes circles as a standalone SVG document. Each circle uses
// the multiply blend mode so overlapping notes darken instead of washing out.
func WriteSVG(w io.Writer, circles []Circle, cfg Config) error {
	bw := bufio.NewWriter(w)

	ext := num(cfg.HalfExtent)
	size := num(2 * cfg.HalfExtent)
	fmt.Fprintf(bw, "<svg xmlns=%q viewBox=\"-%s -%s %s %s\">\n", svgNamespace, ext, ext, size, size)
	bw.WriteString("  <g>\n")
	for _, c := range circles {
		fmt.Fprintf(bw, "    <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\" style=\"mix-blend-mode: multiply;\" />\n",
			num(c.X), num(c.Y), num(c.R), c.Fill)
	}
	bw.WriteString("  </g>\n")
	bw.WriteString("</svg>\n")

	return bw.Flush()
}

// Render lays out ns and writes the SVG to w.
func Render(w io.Writer, ns []notes.Note, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return WriteSVG(w, Layout(ns, cfg), cfg)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
