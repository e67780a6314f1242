package vector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"px2svg/pkg/raster"
)

var (
	red         = raster.Pixel{R: 255, A: 255}
	green       = raster.Pixel{G: 255, A: 255}
	blue        = raster.Pixel{B: 255, A: 255}
	black       = raster.Pixel{A: 255}
	transparent = raster.Pixel{}
)

func gridOf(t *testing.T, w, h int, px ...raster.Pixel) *raster.Grid {
	t.Helper()
	require.Len(t, px, w*h)

	buf := make([]byte, 0, 4*len(px))
	for _, p := range px {
		buf = append(buf, p.R, p.G, p.B, p.A)
	}

	g, err := raster.NewGrid(w, h, buf)
	require.NoError(t, err)
	return g
}

func fill(p raster.Pixel, n int) []raster.Pixel {
	px := make([]raster.Pixel, n)
	for i := range px {
		px[i] = p
	}
	return px
}
