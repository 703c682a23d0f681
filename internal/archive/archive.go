package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsafePath marks an entry that would land outside the destination directory.
var ErrUnsafePath = errors.New("archive: entry escapes destination")

// Extract unpacks the files of zipPath that keep accepts into dir, preserving their
// directory structure, and returns the written paths. A nil keep accepts everything.
// Entries whose names escape dir are skipped.
func Extract(zipPath, dir string, keep func(name string) bool) ([]string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("archive: %w", err)
	}
	defer r.Close()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	var written []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() || (keep != nil && !keep(f.Name)) {
			continue
		}
		dest, err := target(dir, f.Name)
		if err != nil {
			continue
		}
		if err := extractFile(f, dest); err != nil {
			return written, err
		}
		written = append(written, dest)
	}
	return written, nil
}

// target resolves name under dir, refusing absolute paths and ".." escapes.
func target(dir, name string) (string, error) {
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	dest := filepath.Join(dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(dir, dest)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	return dest, nil
}

func extractFile(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("archive: %s: %w", f.Name, err)
	}
	defer rc.Close()
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("archive: %s: %w", f.Name, err)
	}
	return out.Close()
}
