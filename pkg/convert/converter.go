package convert

import (
	"context"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"px2svg/pkg/raster"
	"px2svg/pkg/source"
	"px2svg/pkg/vector"
)

func NewConverter(opener *source.Opener, formats Formats, logger *zap.Logger, opts ...Option) *Converter {
	c := &Converter{
		opener:   opener,
		formats:  formats,
		log:      logger,
		geometry: vector.DefaultGeometry(),
		maxWidth: -1,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Converter turns one image argument into an SVG document. It keeps no
// state between calls and may be used from several goroutines.
type Converter struct {
	opener   *source.Opener
	formats  Formats
	log      *zap.Logger
	geometry vector.Geometry
	maxWidth int
}

// Result is a converted image, not yet written anywhere.
type Result struct {
	Input  string
	Output string
	Remote bool
	Doc    *vector.Document
	Stats  vector.Stats
}

// Convert loads, decodes and encodes name. Errors are *FileError values.
func (c *Converter) Convert(ctx context.Context, name string) (*Result, error) {
	local := source.LocalName(name)

	_, format, ok := c.formats.Match(local)
	if !ok {
		return nil, newFileError(name, ErrUnsupportedFormat, errors.New("unrecognized suffix"))
	}

	in, err := c.opener.Open(ctx, name)
	if err != nil {
		return nil, newFileError(name, ErrFetchFailure, err)
	}

	img, got, err := image.Decode(in.Reader())
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, newFileError(name, ErrUnsupportedFormat, err)
		}
		return nil, newFileError(name, ErrDecodeFailure, errors.Wrapf(err, "decode %s failed", format))
	}
	if got != format {
		return nil, newFileError(name, ErrUnsupportedFormat, errors.Errorf("payload is %s, expected %s", got, format))
	}

	if b := img.Bounds(); c.maxWidth > 0 && b.Dx() > c.maxWidth {
		img = imaging.Resize(img, c.maxWidth, 0, imaging.NearestNeighbor)
		c.log.With(
			zap.String("file", name),
			zap.Int("from", b.Dx()),
			zap.Int("to", c.maxWidth),
		).Debug("downscaled")
	}

	grid, err := raster.FromImage(img)
	if err != nil {
		return nil, newFileError(name, ErrDecodeFailure, err)
	}

	doc := vector.Encode(grid, vector.WithGeometry(c.geometry))
	stats := doc.Stats()

	c.log.With(
		zap.String("file", name),
		zap.String("format", format),
		zap.Int("w", doc.Width),
		zap.Int("h", doc.Height),
		zap.Int("runs", stats.Runs()),
		zap.Int("defs", stats.Definitions),
		zap.Int("refs", stats.References),
	).Debug("encoded")

	return &Result{
		Input:  name,
		Output: c.formats.OutputName(local),
		Remote: in.Remote,
		Doc:    doc,
		Stats:  stats,
	}, nil
}
