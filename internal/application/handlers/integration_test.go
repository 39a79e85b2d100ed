package handlers

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/domain/ports"
	"github.com/adwaits94/datepicker/internal/domain/services"
	"github.com/adwaits94/datepicker/internal/infrastructure/catalogfile"
	"github.com/adwaits94/datepicker/internal/infrastructure/config"
	"github.com/adwaits94/datepicker/internal/infrastructure/historydb/sqlite"
	"github.com/adwaits94/datepicker/internal/infrastructure/historyfile"
	"github.com/adwaits94/datepicker/internal/infrastructure/logging"
)

// initWorkspace runs init in a temp dir and returns it with its catalog.
func initWorkspace(t *testing.T) (string, *catalogfile.Source) {
	t.Helper()
	dir := t.TempDir()

	result, err := NewInitHandler().Handle(context.Background(), dir)
	require.NoError(t, err)

	source, err := catalogfile.NewSource(result.CatalogPath, catalogfile.FormatAuto)
	require.NoError(t, err)
	return dir, source
}

func newIntegrationManager(t *testing.T, catalog ports.CatalogSource, history ports.HistoryStorage, audit ports.AuditLog) *Manager {
	t.Helper()
	manager, err := NewManager(context.Background(), ManagerDeps{
		Catalog: catalog,
		History: history,
		Sampler: services.NewSampler(rand.New(rand.NewPCG(7, 7)), nil),
		Audit:   audit,
		Logger:  logging.Discard(),
	})
	require.NoError(t, err)
	return manager
}

func TestManager_Integration_JSONBackend(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	dir, source := initWorkspace(t)
	historyPath := filepath.Join(config.ConfigDir(dir), config.DefaultHistoryJSONFile)

	manager := newIntegrationManager(t, source, historyfile.NewStore(historyPath), nil)

	maxCost, party := 1000.0, 2
	idea, err := manager.SampleIdea(services.SampleParams{MaxCostPerPerson: &maxCost, PartySize: &party})
	require.NoError(t, err)
	require.NotNil(t, idea)

	_, err = manager.RecordDate(ctx, *idea, party, "2024-02-14")
	require.NoError(t, err)

	// A fresh manager sees the persisted history.
	reopened := newIntegrationManager(t, source, historyfile.NewStore(historyPath), nil)
	history := reopened.GetHistory()
	require.Len(t, history, 1)
	assert.Equal(t, idea.Name(), history[0].ActivityName)
	assert.Equal(t, "2024-02-14", history[0].Date)
	assert.Equal(t, 1, reopened.Analysis().Breakdown.Total)
	assert.False(t, reopened.AuditEnabled())
}

func TestManager_Integration_SQLiteBackend(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	dir, source := initWorkspace(t)
	dbPath := filepath.Join(config.ConfigDir(dir), config.DefaultHistoryDBFile)

	repo, err := sqlite.NewRepository(dbPath)
	require.NoError(t, err)
	defer repo.Close()
	require.NoError(t, repo.EnsureSchema(ctx))

	manager := newIntegrationManager(t, source, repo, repo)
	ideas := manager.Ideas()
	require.GreaterOrEqual(t, len(ideas), 2)

	_, err = manager.RecordDate(ctx, ideas[0], 2, "2024-03-01")
	require.NoError(t, err)
	_, err = manager.RecordDate(ctx, ideas[1], 2, "2024-03-08")
	require.NoError(t, err)

	removed, err := manager.ClearLastHistory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	count, err := repo.CountHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	entries, err := manager.AuditEntries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, entities.ActionHistoryTruncate, entries[0].Action)
	assert.Equal(t, entities.ActionHistoryRecord, entries[2].Action)
	assert.Equal(t, ideas[0].Name(), entries[2].Subject)
}

func TestIdeaHandler_Integration_EditRenamesAndKeepsHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	_, source := initWorkspace(t)

	manager := newIntegrationManager(t, source, historyfile.NewStore(filepath.Join(t.TempDir(), "history.json")), nil)
	handler := NewIdeaHandler(services.NewCatalogService(source), manager)

	original := manager.Ideas()[0]
	_, err := manager.RecordDate(ctx, original, 2, "2024-01-01")
	require.NoError(t, err)

	renamed := mustIdea(t, original.ToBuilder().Name("Renamed idea"))
	require.NoError(t, handler.HandleEdit(ctx, original.Name(), renamed))

	// The catalog on disk has the new name; history keeps the old one.
	onDisk, err := source.LoadIdeas(ctx)
	require.NoError(t, err)
	_, found := entities.FindIdea(onDisk, "Renamed idea")
	assert.True(t, found)

	assert.Equal(t, original.Name(), manager.GetHistory()[0].ActivityName)
	assert.Equal(t, 1, manager.Analysis().Breakdown.Skipped)
}
