package convert

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrFetchFailure means the input could not be read or downloaded.
	ErrFetchFailure = errors.New("fetch failure")
	// ErrUnsupportedFormat means the payload is not the format its suffix names.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrDecodeFailure means the payload is malformed.
	ErrDecodeFailure = errors.New("decode failure")
	// ErrWriteFailure means the output could not be written.
	ErrWriteFailure = errors.New("write failure")
)

func newFileError(path string, kind, err error) *FileError {
	return &FileError{Path: path, Kind: kind, Err: err}
}

// FileError is a failure of one input file. Kind is one of the Err*
// sentinels and matches with errors.Is.
type FileError struct {
	Path string
	Kind error
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	return target == e.Kind
}
