package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "Inter-Regular.ttf", FileName("https://h/raw/Inter-Regular.ttf?raw=1", "", ""))
	assert.Equal(t, "My_Font.otf", FileName("https://h/get", `attachment; filename="My Font.otf"`, ""))
	assert.Equal(t, "pack.zip", FileName("https://h/pack", "", "application/zip"))
	assert.Equal(t, "file.ttf", FileName("https://h/file", "", "font/ttf"))
	assert.Equal(t, "blob.bin", FileName("https://h/blob", "", "text/plain"))
}

func TestFetchSavesBody(t *testing.T) {
	var agent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.UserAgent()
		if r.URL.Path == "/missing.ttf" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "font/ttf")
		_, _ = w.Write([]byte("glyphs"))
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "fonts")
	f := New()
	saved, err := f.Fetch(context.Background(), srv.URL+"/Inter-Regular.ttf", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inter-Regular.ttf"), saved)
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, "glyphs", string(data))
	assert.Equal(t, userAgent, agent)

	_, err = f.Fetch(context.Background(), srv.URL+"/missing.ttf", dir)
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestFetchHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Fetch(ctx, srv.URL+"/a.ttf", t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}
