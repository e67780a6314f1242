package source

import (
	"bytes"
	"io"
	"net/url"
	"path"
	"strings"
)

func newInput(name string, remote bool, bs []byte) *Input {
	return &Input{Name: name, Remote: remote, bytes: bs}
}

// Input is the raw content of one image argument.
type Input struct {
	Name   string
	Remote bool
	bytes  []byte
}

func (in *Input) Bytes() []byte {
	return in.bytes
}

func (in *Input) Reader() io.Reader {
	return bytes.NewReader(in.bytes)
}

func (in *Input) Size() int {
	return len(in.bytes)
}

// IsRemote reports whether name is an http or https URL.
func IsRemote(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://")
}

// LocalName returns the file name used for name on the local filesystem.
// URLs map to the base of their path; other names are returned unchanged.
func LocalName(name string) string {
	if !IsRemote(name) {
		return name
	}
	u, err := url.Parse(name)
	if err != nil || u.Path == "" || u.Path == "/" {
		return path.Base(strings.TrimRight(name, "/"))
	}
	return path.Base(u.Path)
}
