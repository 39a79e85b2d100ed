package mocks

import (
	"context"
	"slices"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

// HistoryStorage is a mock implementation of ports.HistoryStorage.
type HistoryStorage struct {
	Records []entities.HistoryRecord
	LoadErr error
	SaveErr error

	// Call tracking
	SaveCallCount int
}

// LoadHistory returns a copy of the stored records.
func (m *HistoryStorage) LoadHistory(_ context.Context) ([]entities.HistoryRecord, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return slices.Clone(m.Records), nil
}

// SaveHistory replaces the stored records.
func (m *HistoryStorage) SaveHistory(_ context.Context, records []entities.HistoryRecord) error {
	m.SaveCallCount++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Records = slices.Clone(records)
	return nil
}
