// Package discovery enumerates candidate input files for a pipeline run.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates the input directory does not exist.
var ErrNotFound = errors.New("input directory not found")

// ErrEmpty indicates the input directory holds no matching files.
var ErrEmpty = errors.New("no matching input files")

// SourceFile is a read-only reference to one user-provided input.
type SourceFile struct {
	Path     string
	Filename string
}

// Discover lists the files in dir whose extension matches ext. No ordering is
// applied; entries come back in directory-listing order.
func Discover(dir, ext string) ([]SourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("list input directory %s: %w", dir, err)
	}

	ext = strings.ToLower(ext)
	sources := make([]SourceFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.ToLower(filepath.Ext(name)) != ext {
			continue
		}
		sources = append(sources, SourceFile{
			Path:     filepath.Join(dir, name),
			Filename: name,
		})
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", ErrEmpty, ext, dir)
	}
	return sources, nil
}
