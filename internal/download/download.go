package download

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const userAgent = "geometry-explorer/1.0"

// Fetcher saves remote files to disk.
type Fetcher struct {
	HTTP      *http.Client
	UserAgent string
}

// New returns a fetcher with a 60s timeout.
func New() *Fetcher {
	return &Fetcher{HTTP: &http.Client{Timeout: 60 * time.Second}, UserAgent: userAgent}
}

// Fetch downloads rawURL into dir and returns the saved path. The file name comes from
// Content-Disposition or the URL; the extension from the URL or Content-Type.
// A partial file is removed on error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, dir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	req.Header.Set("User-Agent", f.UserAgent)
	resp, err := f.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: %s: HTTP %d", rawURL, resp.StatusCode)
	}

	name := FileName(rawURL, resp.Header.Get("Content-Disposition"), resp.Header.Get("Content-Type"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	saved := filepath.Join(dir, name)
	out, err := os.Create(saved)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(saved)
		return "", fmt.Errorf("download: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(saved)
		return "", fmt.Errorf("download: %w", err)
	}
	return saved, nil
}

var knownExts = map[string]bool{".ttf": true, ".otf": true, ".zip": true}

// FileName picks a safe local name for a download.
func FileName(rawURL, disposition, contentType string) string {
	base := ""
	if _, params, err := mime.ParseMediaType(disposition); err == nil {
		base = params["filename"]
	}
	if base == "" {
		p := rawURL
		if i := strings.IndexAny(p, "?#"); i >= 0 {
			p = p[:i]
		}
		base = path.Base(p)
	}
	ext := strings.ToLower(path.Ext(base))
	if !knownExts[ext] {
		ext = extFor(contentType)
	} else {
		base = base[:len(base)-len(ext)]
	}
	base = sanitize(base)
	if base == "" || base == "." || base == "_" {
		base = "download"
	}
	return base + ext
}

func extFor(contentType string) string {
	mt, _, _ := mime.ParseMediaType(contentType)
	switch {
	case strings.Contains(mt, "zip"):
		return ".zip"
	case strings.Contains(mt, "otf"):
		return ".otf"
	case strings.Contains(mt, "font"), strings.Contains(mt, "ttf"):
		return ".ttf"
	}
	return ".bin"
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitize(name string) string {
	name = unsafeChars.ReplaceAllString(name, "_")
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}
