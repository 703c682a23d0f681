package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned when no font file matches a search.
var ErrNotFound = errors.New("fonts: no matching font")

// Exts are the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate font directories relative to the working directory.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// Match is a font file found under a base directory.
type Match struct {
	Rel  string // forward-slash path relative to the base dir, e.g. "Inter/Inter-Regular.ttf"
	Full string
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// ScanDir returns the sorted relative paths of all font files under dir. A missing dir is empty.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

// normalize lowercases and drops spaces, dashes and underscores.
func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// family strips the directory, weight suffix and extension: "Inter/Inter-Regular.ttf" -> "Inter".
func family(name string) string {
	name = filepath.Base(filepath.ToSlash(name))
	for _, ext := range Exts {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			name = name[:len(name)-len(ext)]
			break
		}
	}
	if i := strings.Index(name, "-"); i > 0 {
		name = name[:i]
	}
	return name
}

// FindIn searches dirs for a font whose path contains search (ignoring case, spaces,
// dashes, underscores). A "Regular" weight wins over other matches. If nothing matches
// the full term, the family name is tried.
func FindIn(dirs []string, search string) (Match, error) {
	for _, term := range []string{search, family(search)} {
		norm := normalize(term)
		if norm == "" {
			continue
		}
		var found []Match
		for _, base := range dirs {
			list, err := ScanDir(base)
			if err != nil {
				continue
			}
			for _, rel := range list {
				if strings.Contains(normalize(rel), norm) {
					found = append(found, Match{Rel: rel, Full: filepath.Join(base, filepath.FromSlash(rel))})
				}
			}
		}
		if len(found) == 0 {
			continue
		}
		for _, m := range found {
			if strings.Contains(strings.ToLower(m.Rel), "regular") {
				return m, nil
			}
		}
		return found[0], nil
	}
	return Match{}, ErrNotFound
}

// FindFont searches BaseDirs for search.
func FindFont(search string) (Match, error) {
	return FindIn(BaseDirs(), search)
}

// Exists reports whether path names a readable file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
