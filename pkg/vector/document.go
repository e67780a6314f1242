package vector

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Document is a fully built SVG image. Definitions are ordered by id and
// Elements by scan order.
type Document struct {
	Width       int
	Height      int
	Geometry    Geometry
	Definitions []Definition
	Elements    []Element
}

// Stats summarises the content of a document.
type Stats struct {
	Definitions int
	Shapes      int
	References  int
}

// Runs is the number of runs that produced the document.
func (s Stats) Runs() int {
	return s.Shapes + s.References
}

func (d *Document) Stats() Stats {
	st := Stats{Definitions: len(d.Definitions)}
	for _, el := range d.Elements {
		if el.Kind == Shape {
			st.Shapes++
		} else {
			st.References++
		}
	}
	return st
}

// WriteTo writes the SVG markup of d to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	ew := &errWriter{w: w}
	height := formatNum(d.Geometry.Height)

	ew.printf("<svg viewBox='0 0 %d %d' xmlns='%s'>", d.Width, d.Height, svgNamespace)

	ew.printf("<defs>")
	for _, def := range d.Definitions {
		ew.printf("<g id='%d'><rect width='%s' height='%s' fill='%s'></rect></g>",
			def.ID, d.rectWidth(def.Signature.Width), height, def.Signature.Color.Hex())
	}
	ew.printf("</defs>")

	for _, el := range d.Elements {
		switch el.Kind {
		case Shape:
			ew.printf("<rect width='%s' height='%s' x='%d' y='%d' fill='%s'></rect>",
				d.rectWidth(el.Width), height, el.X, el.Y, el.Color.Hex())
		case Reference:
			ew.printf("<use href='#%d' x='%d' y='%d'></use>", el.ID, el.X, el.Y)
		}
	}

	ew.printf("</svg>")
	return ew.n, ew.err
}

// Bytes returns the SVG markup of d.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = d.WriteTo(&buf)
	return buf.Bytes()
}

func (d *Document) String() string {
	return string(d.Bytes())
}

func (d *Document) rectWidth(w int) string {
	return formatNum(float64(w) + d.Geometry.Overlap)
}

// formatNum prints v with at most two fractional digits and no trailing
// zeros.
func formatNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

type errWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	n, err := fmt.Fprintf(ew.w, format, args...)
	ew.n += int64(n)
	ew.err = err
}
