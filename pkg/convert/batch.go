package convert

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

func NewBatch(conv *Converter, sink Sink, logger *zap.Logger, opts ...BatchOption) *Batch {
	b := &Batch{
		conv:    conv,
		sink:    sink,
		log:     logger,
		report:  io.Discard,
		workers: runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Batch converts a list of files with a pool of workers. Output is written
// and reported in input order. A failing file is logged and skipped.
type Batch struct {
	conv     *Converter
	sink     Sink
	log      *zap.Logger
	report   io.Writer
	progress io.Writer
	workers  int
}

// Summary counts the outcome of a batch run.
type Summary struct {
	Total     int
	Converted int
	Failed    int
	Skipped   int
}

type outcome struct {
	res        *Result
	err        error
	dispatched bool
}

// Run converts names until done or ctx is cancelled. Files not started
// before cancellation are counted as skipped.
func (b *Batch) Run(ctx context.Context, names []string) Summary {
	sum := Summary{Total: len(names)}
	if len(names) == 0 {
		return sum
	}

	workers := b.workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(names) {
		workers = len(names)
	}

	results := make([]chan outcome, len(names))
	for i := range results {
		results[i] = make(chan outcome, 1)
	}

	// workers may run at most this many files ahead of the reporter, so a
	// slow file does not pile up finished documents behind it
	window := make(chan struct{}, 2*workers)

	jobs := make(chan int)
	go dispatch(ctx, jobs, window, results)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := b.conv.Convert(ctx, names[i])
				results[i] <- outcome{res: res, err: err, dispatched: true}
			}
		}()
	}

	var bar *progressbar.ProgressBar
	if b.progress != nil {
		bar = progressbar.NewOptions(len(names),
			progressbar.OptionSetWriter(b.progress),
			progressbar.OptionSetDescription("Converting"),
			progressbar.OptionShowCount(),
		)
	}

	// output location -> input that was written there
	claimed := make(map[string]string)

	for i, name := range names {
		o := <-results[i]
		b.handle(name, o, claimed, &sum)
		if o.dispatched {
			<-window
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	wg.Wait()

	b.log.With(
		zap.Int("total", sum.Total),
		zap.Int("converted", sum.Converted),
		zap.Int("failed", sum.Failed),
		zap.Int("skipped", sum.Skipped),
	).Debug("batch finished")

	return sum
}

// dispatch feeds job indexes to the workers, taking a window slot for each
// one. Once ctx is done every remaining index gets the context error as its
// outcome.
func dispatch(ctx context.Context, jobs chan<- int, window chan<- struct{}, results []chan outcome) {
	defer close(jobs)
	for i := range results {
		if ctx.Err() == nil {
			select {
			case window <- struct{}{}:
			case <-ctx.Done():
			}
		}
		if ctx.Err() == nil {
			select {
			case jobs <- i:
				continue
			case <-ctx.Done():
			}
		}
		for j := i; j < len(results); j++ {
			results[j] <- outcome{err: ctx.Err()}
		}
		return
	}
}

func (b *Batch) handle(name string, o outcome, claimed map[string]string, sum *Summary) {
	log := b.log.With(zap.String("file", name))

	if o.err != nil {
		if errors.Is(o.err, context.Canceled) || errors.Is(o.err, context.DeadlineExceeded) {
			sum.Skipped++
			log.Debug("skipped")
			return
		}
		sum.Failed++
		log.With(zap.Error(o.err)).Warn("convert failed")
		return
	}

	var place string
	if p, ok := b.sink.(Placer); ok {
		place = p.Destination(o.res)
		if prev, taken := claimed[place]; taken {
			sum.Failed++
			err := errors.Errorf("destination %s already written by %s", place, prev)
			log.With(zap.Error(newFileError(name, ErrWriteFailure, err))).Warn("write failed")
			return
		}
	}

	dst, err := b.sink.Write(o.res)
	if err != nil {
		sum.Failed++
		log.With(zap.Error(newFileError(name, ErrWriteFailure, err))).Warn("write failed")
		return
	}

	if place != "" {
		claimed[place] = name
	}

	sum.Converted++
	_, _ = fmt.Fprintf(b.report, "%s -> %s\n", name, dst)
}
