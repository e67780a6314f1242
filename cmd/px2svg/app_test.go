package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"

	"px2svg/pkg/convert"
)

func TestNewSink(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := zaptest.NewLogger(t)

	assert.IsType(t, &convert.FileSink{}, newSink(config{}, fs, logger))
	assert.IsType(t, &convert.StdoutSink{}, newSink(config{Stdout: true}, fs, logger))
	assert.IsType(t, &convert.DryRunSink{}, newSink(config{DryRun: true, Stdout: true}, fs, logger))
}

func TestConfigValidate(t *testing.T) {
	valid := config{Overlap: 0.2, RowHeight: 1.1}
	assert.NoError(t, valid.validate())

	zero := config{Overlap: 0, RowHeight: 1}
	assert.NoError(t, zero.validate())

	for name, cfg := range map[string]config{
		"negative overlap":    {Overlap: -2, RowHeight: 1.1},
		"zero row height":     {Overlap: 0.2, RowHeight: 0},
		"negative row height": {Overlap: 0.2, RowHeight: -1},
		"negative max width":  {Overlap: 0.2, RowHeight: 1.1, MaxWidth: -5},
	} {
		assert.Error(t, cfg.validate(), name)
	}
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(config{})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))

	l, err = newLogger(config{Debug: true})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))
}

func TestRunConvertsMatchingFiles(t *testing.T) {
	fs := afero.NewMemMapFs()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, "/in/a.png", buf.Bytes(), 0644))
	require.NoError(t, afero.WriteFile(fs, "/in/notes.txt", []byte("skip me"), 0644))

	cfg := config{
		Args:      []string{"/in/*", "/in/missing.gif"},
		OutDir:    "/out",
		Workers:   2,
		Overlap:   0.2,
		RowHeight: 1.1,
	}

	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			newLogger,
			func() afero.Fs { return fs },
			convert.DefaultFormats,
			newOpener,
			newConverter,
			newSink,
			newBatch,
		),
		fx.Invoke(run),
	)

	done := app.Done()
	app.RequireStart()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("batch did not finish")
	}
	app.RequireStop()

	bs, err := afero.ReadFile(fs, "/out/a.svg")
	require.NoError(t, err)
	assert.Contains(t, string(bs), "<rect width='1.2' height='1.1' x='0' y='0' fill='#ff0000'></rect>")

	exists, err := afero.Exists(fs, "/out/notes.svg")
	require.NoError(t, err)
	assert.False(t, exists)
}
