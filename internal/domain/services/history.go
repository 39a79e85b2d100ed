package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/domain/ports"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// generateID returns a new record ID.
func generateID() string {
	return uuid.New().String()
}

// HistoryStore is the append-only log of accepted ideas.
// Every mutation writes the full log to storage before returning; if the
// write fails the in-memory log is left as it was.
//
// HistoryStore is not safe for concurrent use. Concurrent writers would need
// the read-modify-persist sequence in persist to be serialized.
type HistoryStore struct {
	storage ports.HistoryStorage
	logger  *slog.Logger
	records []entities.HistoryRecord
}

// NewHistoryStore loads the log from storage. An unreadable or missing log
// is treated as empty; construction never fails.
func NewHistoryStore(ctx context.Context, storage ports.HistoryStorage, logger *slog.Logger) *HistoryStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &HistoryStore{
		storage: storage,
		logger:  logger,
	}

	records, err := storage.LoadHistory(ctx)
	if err != nil {
		logger.Warn("history unavailable, starting empty",
			slog.String("error", fmt.Errorf("%w: %w", entities.ErrStorageUnavailable, err).Error()))
		return s
	}
	s.records = records
	logger.Debug("history loaded", slog.Int("records", len(records)))
	return s
}

// Append adds a record for activityName. An empty date means today.
// Any name is accepted, including names no catalog knows.
func (s *HistoryStore) Append(ctx context.Context, activityName, date string, costPerPerson *float64) (entities.HistoryRecord, error) {
	if date == "" {
		date = timeNow().Format(entities.DateLayout)
	}
	record := entities.HistoryRecord{
		ID:           generateID(),
		ActivityName: activityName,
		Date:         date,
	}
	if costPerPerson != nil {
		record.CostPerPerson = entities.Float64(*costPerPerson)
	}

	next := make([]entities.HistoryRecord, len(s.records), len(s.records)+1)
	copy(next, s.records)
	next = append(next, record)

	if err := s.persist(ctx, next); err != nil {
		return entities.HistoryRecord{}, err
	}
	return record, nil
}

// All returns the records in insertion order. The slice is a copy.
func (s *HistoryStore) All() []entities.HistoryRecord {
	return slices.Clone(s.records)
}

// Len returns the number of records.
func (s *HistoryStore) Len() int {
	return len(s.records)
}

// Clear deletes every record.
func (s *HistoryStore) Clear(ctx context.Context) error {
	return s.persist(ctx, []entities.HistoryRecord{})
}

// TruncateLast deletes the most recent n records, or all of them when n is
// at least the log length.
func (s *HistoryStore) TruncateLast(ctx context.Context, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: cannot remove %d records", entities.ErrInvalidArgument, n)
	}
	if n == 0 {
		return nil
	}
	keep := max(len(s.records)-n, 0)
	return s.persist(ctx, slices.Clone(s.records[:keep]))
}

// persist writes next to storage and, on success, makes it the current log.
func (s *HistoryStore) persist(ctx context.Context, next []entities.HistoryRecord) error {
	if err := s.storage.SaveHistory(ctx, next); err != nil {
		return fmt.Errorf("%w: saving history: %w", entities.ErrStorageWrite, err)
	}
	s.records = next
	return nil
}
