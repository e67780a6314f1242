package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"px2svg/pkg/convert"
)

var outDir = flag.StringP("out-dir", "o", "", "write documents into this directory instead of next to each input")
var toStdout = flag.Bool("stdout", false, "concatenate documents on standard output")
var dryRun = flag.Bool("dry-run", false, "convert but only log where documents would go")
var workers = flag.IntP("workers", "w", runtime.GOMAXPROCS(0), "files converted in parallel")
var maxWidth = flag.Int("max-width", 0, "downscale wider images to this many pixels")
var overlap = flag.Float64("overlap", 0.2, "extra width added to every rectangle")
var rowHeight = flag.Float64("row-height", 1.1, "drawn height of every row")
var progress = flag.Bool("progress", false, "show progress bars on stderr")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] image...\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Converts %v images to SVG.\n\n", convert.DefaultFormats().Extensions())
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return
	}

	cfg := config{
		Args:      flag.Args(),
		OutDir:    *outDir,
		Stdout:    *toStdout,
		DryRun:    *dryRun,
		Workers:   *workers,
		MaxWidth:  *maxWidth,
		Overlap:   *overlap,
		RowHeight: *rowHeight,
		Progress:  *progress,
		Debug:     *debug,
	}

	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	fxLog := fx.NopLogger
	if cfg.Debug {
		fxLog = fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		})
	}

	fx.New(
		fxLog,
		fx.Supply(cfg),
		fx.Provide(
			newLogger,
			newFs,
			convert.DefaultFormats,
			newOpener,
			newConverter,
			newSink,
			newBatch,
		),
		fx.Invoke(
			run,
		),
	).Run()
}
