package convert

import (
	"io"
)

type BatchOption func(b *Batch)

// WithWorkers sets how many files are converted at the same time.
func WithWorkers(n int) BatchOption {
	return func(b *Batch) {
		b.workers = n
	}
}

// WithReport sets where "<input> -> <output>" lines are printed.
func WithReport(w io.Writer) BatchOption {
	return func(b *Batch) {
		b.report = w
	}
}

// WithProgress draws a progress bar of finished files to w.
func WithProgress(w io.Writer) BatchOption {
	return func(b *Batch) {
		b.progress = w
	}
}
