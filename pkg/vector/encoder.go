package vector

import (
	"px2svg/pkg/raster"
)

type Option func(e *encoder)

// WithGeometry overrides the rectangle overlap and row height.
func WithGeometry(g Geometry) Option {
	return func(e *encoder) {
		e.geometry = g
	}
}

type encoder struct {
	geometry Geometry
}

// Encode converts src into a Document. Every call starts with an empty
// definition cache, so results never depend on earlier conversions.
func Encode(src raster.Source, opts ...Option) *Document {
	e := &encoder{geometry: DefaultGeometry()}
	for _, opt := range opts {
		opt(e)
	}

	cache := NewCache()
	emitter := NewEmitter(cache)

	s := NewScanner(src)
	for s.Scan() {
		emitter.Emit(s.Run())
	}

	w, h := src.Size()
	return &Document{
		Width:       w,
		Height:      h,
		Geometry:    e.geometry,
		Definitions: cache.Definitions(),
		Elements:    emitter.Elements(),
	}
}
