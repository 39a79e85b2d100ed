package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(":memory:")
		require.NoError(t, err)
		defer repo.Close()
		assert.Equal(t, ":memory:", repo.Path())
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository("")
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	for _, table := range []string{"history", "audit_log"} {
		var count int
		err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}

	// Should not error when called again
	require.NoError(t, repo.EnsureSchema(context.Background()))
}

func TestRepository_History(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	t.Run("empty log", func(t *testing.T) {
		records, err := repo.LoadHistory(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.NotNil(t, records)
	})

	records := []entities.HistoryRecord{
		{ID: "r1", ActivityName: "Picnic", Date: "2024-05-01", CostPerPerson: entities.Float64(300)},
		{ID: "r2", ActivityName: "Walk", Date: "2024-05-03"},
		{ActivityName: "Movie night", Date: "2024-05-04", CostPerPerson: entities.Float64(0)},
	}

	t.Run("save then load keeps order and null cost", func(t *testing.T) {
		require.NoError(t, repo.SaveHistory(ctx, records))

		loaded, err := repo.LoadHistory(ctx)
		require.NoError(t, err)
		assert.Equal(t, records, loaded)
	})

	t.Run("save replaces the whole log", func(t *testing.T) {
		require.NoError(t, repo.SaveHistory(ctx, records[:1]))

		count, err := repo.CountHistory(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("save empty clears", func(t *testing.T) {
		require.NoError(t, repo.SaveHistory(ctx, nil))

		loaded, err := repo.LoadHistory(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})
}

func TestRepository_SaveHistory_ManyRecords(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	records := make([]entities.HistoryRecord, insertBatchSize*2+7)
	for i := range records {
		records[i] = entities.HistoryRecord{ActivityName: fmt.Sprintf("idea-%d", i), Date: "2024-01-01"}
	}
	require.NoError(t, repo.SaveHistory(ctx, records))

	loaded, err := repo.LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, len(records))
	assert.Equal(t, "idea-0", loaded[0].ActivityName)
	assert.Equal(t, records[len(records)-1].ActivityName, loaded[len(loaded)-1].ActivityName)
}

func TestRepository_SaveHistory_CanceledContextKeepsLog(t *testing.T) {
	repo := setupTestRepo(t)
	records := []entities.HistoryRecord{{ActivityName: "Picnic", Date: "2024-05-01"}}
	require.NoError(t, repo.SaveHistory(context.Background(), records))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, repo.SaveHistory(ctx, nil))

	loaded, err := repo.LoadHistory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestRepository_FilePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	repo, err := NewRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.SaveHistory(ctx, []entities.HistoryRecord{{ID: "x", ActivityName: "Walk", Date: "2024-02-02"}}))
	require.NoError(t, repo.Close())

	reopened, err := NewRepository(path)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.EnsureSchema(ctx))

	loaded, err := reopened.LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Walk", loaded[0].ActivityName)
}

func TestRepository_AuditLog(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	orig := timeNow
	timeNow = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { timeNow = orig })

	t.Run("log action with details", func(t *testing.T) {
		err := repo.LogAction(ctx, entities.ActionHistoryRecord, "Picnic", map[string]any{
			"date":  "2024-06-01",
			"party": 2,
		})
		require.NoError(t, err)
	})

	t.Run("log action without subject or details", func(t *testing.T) {
		require.NoError(t, repo.LogAction(ctx, entities.ActionHistoryClear, "", nil))
	})

	t.Run("list newest first", func(t *testing.T) {
		entries, err := repo.ListActions(ctx, 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, entities.ActionHistoryClear, entries[0].Action)
		assert.Empty(t, entries[0].Subject)
		assert.Nil(t, entries[0].Details)

		assert.Equal(t, entities.ActionHistoryRecord, entries[1].Action)
		assert.Equal(t, "Picnic", entries[1].Subject)
		assert.Equal(t, "2024-06-01", entries[1].Details["date"])
		assert.Equal(t, float64(2), entries[1].Details["party"])
		assert.NotEmpty(t, entries[1].ID)
		assert.True(t, entries[1].CreatedAt.Equal(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)))
	})

	t.Run("list with limit", func(t *testing.T) {
		for range 5 {
			require.NoError(t, repo.LogAction(ctx, entities.ActionCatalogSave, "", nil))
		}

		entries, err := repo.ListActions(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
		for _, e := range entries {
			assert.Equal(t, entities.ActionCatalogSave, e.Action)
		}
	})
}
