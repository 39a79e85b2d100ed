// Package historyfile keeps the history log in a JSON array file.
package historyfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/infrastructure/catalogfile"
)

// Store implements ports.HistoryStorage over one JSON file.
type Store struct {
	path string
}

// NewStore creates a Store for path. The file is created on first save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the history file location.
func (s *Store) Path() string {
	return s.path
}

// LoadHistory reads every record. A missing file is an empty log.
func (s *Store) LoadHistory(_ context.Context) ([]entities.HistoryRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []entities.HistoryRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var records []entities.HistoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing history file %s: %w", s.path, err)
	}
	if records == nil {
		records = []entities.HistoryRecord{}
	}
	return records, nil
}

// SaveHistory rewrites the whole file.
func (s *Store) SaveHistory(_ context.Context, records []entities.HistoryRecord) error {
	if records == nil {
		records = []entities.HistoryRecord{}
	}
	return catalogfile.WriteAtomic(s.path, func(f *os.File) error {
		encoder := json.NewEncoder(f)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(records)
	})
}
