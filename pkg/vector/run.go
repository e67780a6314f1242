package vector

import (
	"fmt"

	"px2svg/pkg/raster"
)

// Color is an opaque RGB fill value. Two colors are equal only if all three
// channels match.
type Color struct {
	R, G, B uint8
}

func colorOf(p raster.Pixel) Color {
	return Color{R: p.R, G: p.G, B: p.B}
}

// Hex returns the color as a lowercase #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Run is a horizontal span of equal colored pixels on a single row.
type Run struct {
	Color Color
	Width int
	X     int
	Y     int
}

// Signature returns the position independent shape key of the run.
func (r Run) Signature() Signature {
	return Signature{Width: r.Width, Color: r.Color}
}

// Signature identifies a shape regardless of where it is drawn.
type Signature struct {
	Width int
	Color Color
}
