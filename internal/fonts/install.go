package fonts

import (
	"context"
	"fmt"
	"os"
	"strings"

	"geometry-explorer/internal/archive"
	"geometry-explorer/internal/download"
	"geometry-explorer/internal/googlefonts"
)

// InstallDir is where downloaded families are stored; it is the first of BaseDirs.
const InstallDir = "assets/fonts"

// Installer finds a family locally or fetches it from Google Fonts into Dir.
type Installer struct {
	Dir     string
	Google  *googlefonts.Client
	Fetcher *download.Fetcher
}

// NewInstaller returns an installer writing into dir.
func NewInstaller(dir string) *Installer {
	return &Installer{Dir: dir, Google: googlefonts.New(), Fetcher: download.New()}
}

// Install returns a local match for family, downloading it first when none exists.
// Zip downloads are unpacked and removed.
func (in *Installer) Install(ctx context.Context, family string) (Match, error) {
	if m, err := FindIn([]string{in.Dir}, family); err == nil {
		return m, nil
	}
	u, err := in.Google.FamilyURL(ctx, family)
	if err != nil {
		return Match{}, err
	}
	saved, err := in.Fetcher.Fetch(ctx, u, in.Dir)
	if err != nil {
		return Match{}, err
	}
	if strings.HasSuffix(strings.ToLower(saved), ".zip") {
		_, err := archive.Extract(saved, in.Dir, isFont)
		os.Remove(saved)
		if err != nil {
			return Match{}, err
		}
	}
	m, err := FindIn([]string{in.Dir}, family)
	if err != nil {
		return Match{}, fmt.Errorf("fonts: %s downloaded but not found: %w", family, err)
	}
	return m, nil
}
