// Package catalogfile stores the idea catalog in a single JSON, YAML or CSV file.
package catalogfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/infrastructure/parsers"
)

// FormatAuto picks the format from the file extension.
const FormatAuto = "auto"

// Source implements ports.CatalogSource over one file.
type Source struct {
	path   string
	format string
}

// NewSource creates a Source for path. format is json, yaml, csv or auto.
func NewSource(path, format string) (*Source, error) {
	if format == "" || format == FormatAuto {
		format = parsers.FormatOf(path)
	}
	if parsers.ForFormat(format) == nil {
		return nil, fmt.Errorf("%w: unsupported catalog format %q for %s (use json, yaml or csv)",
			entities.ErrInvalidArgument, format, path)
	}
	return &Source{path: path, format: format}, nil
}

// Path returns the catalog file location.
func (s *Source) Path() string {
	return s.path
}

// LoadIdeas reads and validates every idea in the file. A single invalid
// record fails the whole load.
func (s *Source) LoadIdeas(_ context.Context) ([]entities.Idea, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: catalog file not found: %s", entities.ErrStorageUnavailable, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: opening catalog: %w", entities.ErrStorageUnavailable, err)
	}
	defer f.Close()

	raws, err := parsers.ForFormat(s.format).Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrStorageUnavailable, s.path, err)
	}

	ideas, err := parsers.ToIdeas(raws)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return ideas, nil
}

// SaveIdeas rewrites the whole file.
func (s *Source) SaveIdeas(_ context.Context, ideas []entities.Idea) error {
	encoder := parsers.EncoderFor(s.format)
	return WriteAtomic(s.path, func(f *os.File) error {
		return encoder.Encode(f, parsers.FromIdeas(ideas))
	})
}

// WriteAtomic writes a file by filling a temporary sibling and renaming it
// over path, so readers never see a partial file.
func WriteAtomic(path string, write func(f *os.File) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
