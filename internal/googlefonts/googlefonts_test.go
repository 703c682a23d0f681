package googlefonts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolders(t *testing.T) {
	assert.Equal(t, []string{"inter"}, Folders(" Inter "))
	assert.Equal(t, []string{"opensans", "open-sans"}, Folders("Open Sans"))
	assert.Nil(t, Folders("  "))
}

func newServer(t *testing.T) (*Client, *httptest.Server) {
	t.Helper()
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/ofl/open-sans", func(w http.ResponseWriter, _ *http.Request) {
		raw := srv.URL + "/raw/"
		_ = json.NewEncoder(w).Encode([]entry{
			{Name: "OFL.txt", Type: "file", DownloadURL: raw + "OFL.txt"},
			{Name: "OpenSans-Italic.ttf", Type: "file", DownloadURL: raw + "OpenSans-Italic.ttf"},
			{Name: "static", Type: "dir"},
			{Name: "Evil.ttf", Type: "file", DownloadURL: "https://example.com/Evil.ttf"},
			{Name: "OpenSans.ttf", Type: "file", DownloadURL: raw + "OpenSans.ttf"},
		})
	})
	mux.HandleFunc("/ofl/slanted", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]entry{
			{Name: "Slanted-Italic.otf", Type: "file", DownloadURL: srv.URL + "/raw/Slanted-Italic.otf"},
		})
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := New()
	c.API = srv.URL + "/ofl"
	c.RawPrefix = srv.URL + "/raw/"
	return c, srv
}

func TestFamilyURLPrefersUpright(t *testing.T) {
	c, srv := newServer(t)
	u, err := c.FamilyURL(context.Background(), "Open Sans")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/raw/OpenSans.ttf", u)
}

func TestFileURLFallsBackToItalic(t *testing.T) {
	c, srv := newServer(t)
	u, err := c.FileURL(context.Background(), "slanted")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/raw/Slanted-Italic.otf", u)
}

func TestFamilyURLNotFound(t *testing.T) {
	c, _ := newServer(t)
	_, err := c.FamilyURL(context.Background(), "Nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
