package main

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"px2svg/pkg/convert"
	"px2svg/pkg/source"
	"px2svg/pkg/vector"
)

type config struct {
	Args      []string
	OutDir    string
	Stdout    bool
	DryRun    bool
	Workers   int
	MaxWidth  int
	Overlap   float64
	RowHeight float64
	Progress  bool
	Debug     bool
}

// validate rejects geometry that would produce non-positive rectangle sizes.
func (c config) validate() error {
	if c.Overlap < 0 {
		return errors.Errorf("--overlap must not be negative, got %v", c.Overlap)
	}
	if c.RowHeight <= 0 {
		return errors.Errorf("--row-height must be positive, got %v", c.RowHeight)
	}
	if c.MaxWidth < 0 {
		return errors.Errorf("--max-width must not be negative, got %d", c.MaxWidth)
	}
	return nil
}

func (c config) progress() io.Writer {
	if c.Progress {
		return os.Stderr
	}
	return nil
}

func newLogger(cfg config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if !cfg.Debug {
		zc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		zc.DisableStacktrace = true
	}
	return zc.Build()
}

func newFs() afero.Fs {
	return afero.NewOsFs()
}

func newOpener(cfg config, fs afero.Fs, logger *zap.Logger) *source.Opener {
	var opts []source.Option
	if w := cfg.progress(); w != nil {
		opts = append(opts, source.WithProgress(w))
	}
	return source.NewOpener(fs, logger, opts...)
}

func newConverter(cfg config, opener *source.Opener, formats convert.Formats, logger *zap.Logger) *convert.Converter {
	return convert.NewConverter(opener, formats, logger,
		convert.WithMaxWidth(cfg.MaxWidth),
		convert.WithGeometry(vector.Geometry{Overlap: cfg.Overlap, Height: cfg.RowHeight}),
	)
}

func newSink(cfg config, fs afero.Fs, logger *zap.Logger) convert.Sink {
	switch {
	case cfg.DryRun:
		return convert.NewDryRunSink(cfg.OutDir, logger)
	case cfg.Stdout:
		return convert.NewStdoutSink(os.Stdout)
	}
	return convert.NewFileSink(fs, cfg.OutDir, logger)
}

func newBatch(cfg config, conv *convert.Converter, sink convert.Sink, logger *zap.Logger) *convert.Batch {
	opts := []convert.BatchOption{
		convert.WithWorkers(cfg.Workers),
		// keep stdout clean for the documents themselves
		convert.WithReport(lo.Ternary[io.Writer](cfg.Stdout, os.Stderr, os.Stdout)),
	}
	if w := cfg.progress(); w != nil {
		opts = append(opts, convert.WithProgress(w))
	}
	return convert.NewBatch(conv, sink, logger, opts...)
}

func run(lc fx.Lifecycle, sd fx.Shutdowner, cfg config, fs afero.Fs, formats convert.Formats, batch *convert.Batch, logger *zap.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer func() {
					close(done)
					if err := sd.Shutdown(); err != nil {
						logger.With(zap.Error(err)).Info("shutdown failed")
					}
				}()

				names := formats.Filter(source.Expand(fs, cfg.Args))
				if len(names) == 0 {
					logger.With(zap.Strings("extensions", formats.Extensions())).Info("no supported images given, nothing to do")
					return
				}

				sum := batch.Run(ctx, names)
				logger.With(
					zap.Int("converted", sum.Converted),
					zap.Int("failed", sum.Failed),
					zap.Int("skipped", sum.Skipped),
				).Info("finished")
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
