package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/domain/mocks"
)

func fixedNow(t *testing.T, now time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = orig })
}

func TestNewHistoryStore_LoadsRecords(t *testing.T) {
	storage := &mocks.HistoryStorage{Records: []entities.HistoryRecord{
		{ActivityName: "Picnic", Date: "2024-05-01"},
	}}

	store := NewHistoryStore(context.Background(), storage, nil)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "Picnic", store.All()[0].ActivityName)
}

func TestNewHistoryStore_UnreadableStartsEmpty(t *testing.T) {
	storage := &mocks.HistoryStorage{LoadErr: errors.New("corrupt file")}

	store := NewHistoryStore(context.Background(), storage, nil)
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.All())
}

func TestHistoryStore_Append(t *testing.T) {
	fixedNow(t, time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC))
	storage := &mocks.HistoryStorage{}
	store := NewHistoryStore(context.Background(), storage, nil)

	record, err := store.Append(context.Background(), "Picnic", "", entities.Float64(300))
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", record.Date)
	assert.NotEmpty(t, record.ID)
	require.NotNil(t, record.CostPerPerson)
	assert.Equal(t, 300.0, *record.CostPerPerson)

	_, err = store.Append(context.Background(), "Not in any catalog", "2024-01-02", nil)
	require.NoError(t, err)

	require.Len(t, storage.Records, 2)
	assert.Equal(t, "Picnic", storage.Records[0].ActivityName)
	assert.Equal(t, "Not in any catalog", storage.Records[1].ActivityName)
	assert.Nil(t, storage.Records[1].CostPerPerson)
	assert.Equal(t, 2, storage.SaveCallCount)
}

func TestHistoryStore_Append_SaveFailureLeavesLogUnchanged(t *testing.T) {
	storage := &mocks.HistoryStorage{Records: []entities.HistoryRecord{{ActivityName: "Walk", Date: "2024-01-01"}}}
	store := NewHistoryStore(context.Background(), storage, nil)
	storage.SaveErr = errors.New("disk full")

	_, err := store.Append(context.Background(), "Picnic", "2024-01-02", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrStorageWrite)
	assert.Equal(t, 1, store.Len())
}

func TestHistoryStore_All_ReturnsCopy(t *testing.T) {
	storage := &mocks.HistoryStorage{Records: []entities.HistoryRecord{{ActivityName: "Walk", Date: "2024-01-01"}}}
	store := NewHistoryStore(context.Background(), storage, nil)

	all := store.All()
	all[0].ActivityName = "changed"
	assert.Equal(t, "Walk", store.All()[0].ActivityName)
}

func TestHistoryStore_TruncateLast(t *testing.T) {
	seed := func() []entities.HistoryRecord {
		return []entities.HistoryRecord{
			{ActivityName: "a", Date: "2024-01-01"},
			{ActivityName: "b", Date: "2024-01-02"},
			{ActivityName: "c", Date: "2024-01-03"},
			{ActivityName: "d", Date: "2024-01-04"},
			{ActivityName: "e", Date: "2024-01-05"},
		}
	}

	tests := []struct {
		name     string
		n        int
		expected []string
	}{
		{"remove two", 2, []string{"a", "b", "c"}},
		{"remove zero is a no-op", 0, []string{"a", "b", "c", "d", "e"}},
		{"remove all", 5, []string{}},
		{"remove more than exist", 10, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &mocks.HistoryStorage{Records: seed()}
			store := NewHistoryStore(context.Background(), storage, nil)

			require.NoError(t, store.TruncateLast(context.Background(), tt.n))

			got := make([]string, 0, store.Len())
			for _, r := range store.All() {
				got = append(got, r.ActivityName)
			}
			assert.Equal(t, tt.expected, got)
			assert.Len(t, storage.Records, len(tt.expected))
		})
	}
}

func TestHistoryStore_TruncateLast_Negative(t *testing.T) {
	store := NewHistoryStore(context.Background(), &mocks.HistoryStorage{}, nil)

	err := store.TruncateLast(context.Background(), -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestHistoryStore_Clear(t *testing.T) {
	storage := &mocks.HistoryStorage{Records: []entities.HistoryRecord{
		{ActivityName: "a", Date: "2024-01-01"},
		{ActivityName: "b", Date: "2024-01-02"},
	}}
	store := NewHistoryStore(context.Background(), storage, nil)

	require.NoError(t, store.Clear(context.Background()))
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, storage.Records)

	require.NoError(t, store.Clear(context.Background()))
	assert.Equal(t, 0, store.Len())
}

func TestHistoryStore_Clear_SaveFailure(t *testing.T) {
	storage := &mocks.HistoryStorage{Records: []entities.HistoryRecord{{ActivityName: "a", Date: "2024-01-01"}}}
	store := NewHistoryStore(context.Background(), storage, nil)
	storage.SaveErr = errors.New("read-only")

	err := store.Clear(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrStorageWrite)
	assert.Equal(t, 1, store.Len())
}
