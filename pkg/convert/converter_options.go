package convert

import (
	"px2svg/pkg/vector"
)

type Option func(c *Converter)

// WithMaxWidth downscales wider images to max pixels before encoding. The
// nearest neighbour filter is used, so no new colors are introduced.
func WithMaxWidth(max int) Option {
	return func(c *Converter) {
		c.maxWidth = max
	}
}

func WithGeometry(g vector.Geometry) Option {
	return func(c *Converter) {
		c.geometry = g
	}
}
