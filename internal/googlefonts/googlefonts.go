package googlefonts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultAPI lists the folders of OFL families in the google/fonts repository.
	DefaultAPI = "https://api.github.com/repos/google/fonts/contents/ofl"
	// DefaultRawPrefix is the only prefix download links are accepted from.
	DefaultRawPrefix = "https://raw.githubusercontent.com/google/fonts/"
)

// ErrNotFound is returned when no folder variant of a family exists.
var ErrNotFound = errors.New("googlefonts: family not found")

type entry struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// Client looks up font files in the google/fonts repository.
type Client struct {
	HTTP      *http.Client
	API       string
	RawPrefix string
}

// New returns a client for the public repository with a 15s timeout.
func New() *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 15 * time.Second},
		API:       DefaultAPI,
		RawPrefix: DefaultRawPrefix,
	}
}

// Folders returns the repository folder names to try for a display name:
// "Open Sans" -> ["opensans", "open-sans"].
func Folders(family string) []string {
	lower := strings.ToLower(strings.TrimSpace(family))
	if lower == "" {
		return nil
	}
	joined := strings.ReplaceAll(lower, " ", "")
	out := []string{joined}
	if dashed := strings.ReplaceAll(lower, " ", "-"); dashed != joined {
		out = append(out, dashed)
	}
	return out
}

// FileURL returns the download link of one font file in folder. Upright styles win
// over italics.
func (c *Client) FileURL(ctx context.Context, folder string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.API+"/"+url.PathEscape(folder), nil)
	if err != nil {
		return "", fmt.Errorf("googlefonts: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("googlefonts: %w", err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrNotFound, folder)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("googlefonts: %s: HTTP %d", folder, resp.StatusCode)
	}
	var entries []entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return "", fmt.Errorf("googlefonts: %s: %w", folder, err)
	}
	if u := c.pick(entries); u != "" {
		return u, nil
	}
	return "", fmt.Errorf("%w: no font file in %s", ErrNotFound, folder)
}

func (c *Client) pick(entries []entry) string {
	var italic string
	for _, e := range entries {
		name := strings.ToLower(e.Name)
		if e.Type != "file" || !strings.HasPrefix(e.DownloadURL, c.RawPrefix) {
			continue
		}
		if !strings.HasSuffix(name, ".ttf") && !strings.HasSuffix(name, ".otf") {
			continue
		}
		if !strings.Contains(name, "italic") {
			return e.DownloadURL
		}
		if italic == "" {
			italic = e.DownloadURL
		}
	}
	return italic
}

// FamilyURL tries every Folders variant of family and returns the first file found.
func (c *Client) FamilyURL(ctx context.Context, family string) (string, error) {
	folders := Folders(family)
	if len(folders) == 0 {
		return "", fmt.Errorf("googlefonts: empty family name")
	}
	var last error
	for _, f := range folders {
		u, err := c.FileURL(ctx, f)
		if err == nil {
			return u, nil
		}
		last = err
	}
	return "", last
}
