package ports

import (
	"context"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

// HistoryStorage persists the history log wholesale.
// Implementations must return records in the order they were saved.
type HistoryStorage interface {
	// LoadHistory reads every stored record.
	LoadHistory(ctx context.Context) ([]entities.HistoryRecord, error)

	// SaveHistory replaces the stored log with records.
	SaveHistory(ctx context.Context, records []entities.HistoryRecord) error
}
