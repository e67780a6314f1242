package convert

import (
	"io"
	"os"
	"path/filepath"

	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Sink stores a converted document and returns where it went.
type Sink interface {
	Write(res *Result) (string, error)
}

// Placer is implemented by sinks that give every document its own
// location. Batch uses it to refuse two inputs sharing one output.
type Placer interface {
	Destination(res *Result) string
}

// destination places the output next to its input, or inside dir when set.
// Downloaded inputs have no directory of their own and land in dir.
func destination(dir string, res *Result) string {
	if dir == "" {
		return res.Output
	}
	return filepath.Join(dir, filepath.Base(res.Output))
}

func NewFileSink(fs afero.Fs, dir string, logger *zap.Logger) *FileSink {
	return &FileSink{fs: fs, dir: dir, log: logger}
}

// FileSink writes each document to its own file. The file is first written
// under a temporary name and renamed into place, so a failed write never
// leaves a truncated document behind.
type FileSink struct {
	fs  afero.Fs
	dir string
	log *zap.Logger
}

func (s *FileSink) Destination(res *Result) string {
	return destination(s.dir, res)
}

func (s *FileSink) Write(res *Result) (string, error) {
	dst := s.Destination(res)
	dir := filepath.Dir(dst)

	if exists, err := afero.DirExists(s.fs, dir); err != nil {
		return "", err
	} else if !exists {
		if err2 := s.fs.MkdirAll(dir, 0755); err2 != nil {
			return "", errors.Wrap(err2, "create output dir failed")
		}
	}

	tmp := filepath.Join(dir, "."+xid.New().String()+".tmp")
	n, err := s.writeFile(tmp, res)
	if err != nil {
		_ = s.fs.Remove(tmp)
		return "", err
	}

	if err := s.fs.Rename(tmp, dst); err != nil {
		_ = s.fs.Remove(tmp)
		return "", errors.Wrap(err, "rename output failed")
	}

	s.log.With(
		zap.String("file", dst),
		zap.String("size", bytesize.New(float64(n)).String()),
	).Debug("document saved")

	return dst, nil
}

func (s *FileSink) writeFile(name string, res *Result) (int64, error) {
	f, err := s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, errors.Wrap(err, "create output failed")
	}

	n, err := res.Doc.WriteTo(f)
	if err != nil {
		_ = f.Close()
		return n, errors.Wrap(err, "write output failed")
	}

	if err := f.Close(); err != nil {
		return n, errors.Wrap(err, "close output failed")
	}

	return n, nil
}

func NewStdoutSink(w io.Writer) *StdoutSink {
	return &StdoutSink{w: w}
}

// StdoutSink concatenates documents on one writer, one per line.
type StdoutSink struct {
	w io.Writer
}

func (s *StdoutSink) Write(res *Result) (string, error) {
	if _, err := res.Doc.WriteTo(s.w); err != nil {
		return "", errors.Wrap(err, "write document failed")
	}
	if _, err := io.WriteString(s.w, "\n"); err != nil {
		return "", errors.Wrap(err, "write document failed")
	}
	return "-", nil
}

func NewDryRunSink(dir string, logger *zap.Logger) *DryRunSink {
	return &DryRunSink{dir: dir, log: logger}
}

// DryRunSink only logs the file each document would be written to.
type DryRunSink struct {
	dir string
	log *zap.Logger
}

func (s *DryRunSink) Destination(res *Result) string {
	return destination(s.dir, res)
}

func (s *DryRunSink) Write(res *Result) (string, error) {
	dst := s.Destination(res)
	s.log.With(
		zap.String("file", dst),
		zap.Int("w", res.Doc.Width),
		zap.Int("h", res.Doc.Height),
		zap.Int("defs", res.Stats.Definitions),
		zap.Int("shapes", res.Stats.Shapes),
		zap.Int("refs", res.Stats.References),
	).Info("dry-run")
	return dst, nil
}
