package source

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Option func(o *Opener)

// WithProgress draws a byte progress bar to w while downloading.
func WithProgress(w io.Writer) Option {
	return func(o *Opener) {
		o.progress = w
	}
}

// WithClient replaces the default HTTP client.
func WithClient(cli *resty.Client) Option {
	return func(o *Opener) {
		o.cli = cli.SetDoNotParseResponse(true)
	}
}

func NewOpener(fs afero.Fs, logger *zap.Logger, opts ...Option) *Opener {
	o := &Opener{
		fs:  fs,
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Opener loads image arguments from the filesystem or over HTTP.
type Opener struct {
	fs       afero.Fs
	cli      *resty.Client
	log      *zap.Logger
	progress io.Writer
}

func (o *Opener) Open(ctx context.Context, name string) (*Input, error) {
	if IsRemote(name) {
		bs, err := o.fetch(ctx, name)
		if err != nil {
			return nil, err
		}
		return newInput(name, true, bs), nil
	}

	bs, err := afero.ReadFile(o.fs, name)
	if err != nil {
		return nil, errors.Wrap(err, "read file failed")
	}

	return newInput(name, false, bs), nil
}

func (o *Opener) fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := o.cli.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, errors.Wrap(err, "download failed")
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, errors.Errorf("download failed: unexpected status %d", code)
	}

	var dst io.Writer
	var buf bytes.Buffer
	dst = &buf

	if o.progress != nil {
		bar := progressbar.NewOptions64(
			resp.RawResponse.ContentLength,
			progressbar.OptionSetWriter(o.progress),
			progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", url)),
			progressbar.OptionShowBytes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(10),
		)
		dst = io.MultiWriter(&buf, bar)
	}

	if _, err := io.Copy(dst, resp.RawBody()); err != nil {
		return nil, errors.Wrap(err, "download failed")
	}

	o.log.With(zap.String("url", url), zap.Int("bytes", buf.Len())).Debug("downloaded")
	return buf.Bytes(), nil
}
