package source

import (
	"bytes"
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestOpenLocal(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/img/a.png", []byte("data"), 0644))

	o := NewOpener(fs, zaptest.NewLogger(t))

	in, err := o.Open(context.Background(), "/img/a.png")
	require.NoError(t, err)
	assert.Equal(t, "/img/a.png", in.Name)
	assert.False(t, in.Remote)
	assert.Equal(t, []byte("data"), in.Bytes())
	assert.Equal(t, 4, in.Size())

	bs, err := ioutil.ReadAll(in.Reader())
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), bs)

	_, err = o.Open(context.Background(), "/img/missing.png")
	assert.Error(t, err)
}

func TestOpenRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pics/cat.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("remote-bytes"))
	}))
	defer srv.Close()

	var progress bytes.Buffer
	o := NewOpener(afero.NewMemMapFs(), zaptest.NewLogger(t), WithProgress(&progress))

	in, err := o.Open(context.Background(), srv.URL+"/pics/cat.png")
	require.NoError(t, err)
	assert.True(t, in.Remote)
	assert.Equal(t, []byte("remote-bytes"), in.Bytes())
	assert.NotZero(t, progress.Len())

	_, err = o.Open(context.Background(), srv.URL+"/pics/dog.png")
	assert.Error(t, err)
}

func TestLocalName(t *testing.T) {
	assert.Equal(t, "dir/a.png", LocalName("dir/a.png"))
	assert.Equal(t, "cat.png", LocalName("https://example.com/pics/cat.png?size=2"))
	assert.Equal(t, "example.com", LocalName("http://example.com/"))
	assert.True(t, IsRemote("https://x/y.png"))
	assert.False(t, IsRemote("httpfile.png"))
}

func TestExpand(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"/in/a.png", "/in/b.png", "/in/c.txt"} {
		require.NoError(t, afero.WriteFile(fs, name, nil, 0644))
	}

	got := Expand(fs, []string{
		"/in/*.png",
		"/in/a.png",
		"/missing/*.png",
		"https://example.com/*.png",
		"/in/[",
	})

	assert.Equal(t, []string{
		"/in/a.png",
		"/in/b.png",
		"/missing/*.png",
		"https://example.com/*.png",
		"/in/[",
	}, got)
}
