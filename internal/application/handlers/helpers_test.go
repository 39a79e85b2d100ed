package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/domain/mocks"
	"github.com/adwaits94/datepicker/internal/domain/services"
	"github.com/adwaits94/datepicker/internal/infrastructure/logging"
)

func mustIdea(t *testing.T, b *entities.IdeaBuilder) entities.Idea {
	t.Helper()
	idea, err := b.Build()
	require.NoError(t, err)
	return idea
}

func testCatalog(t *testing.T) []entities.Idea {
	t.Helper()
	return []entities.Idea{
		mustIdea(t, entities.NewIdeaBuilder("Movie night").LikedBy("bf", "gf").Locations("home").Tags("relaxed").Cost(200, entities.CostTypeTotal)),
		mustIdea(t, entities.NewIdeaBuilder("Picnic").LikedBy("gf").Locations("outside").Tags("food").Cost(600, entities.CostTypeTotal)),
		mustIdea(t, entities.NewIdeaBuilder("Concert").LikedBy("bf").Locations("outside").Tags("music").Cost(1500, entities.CostTypePerPerson).MaxPeople(4)),
	}
}

type managerFixture struct {
	catalog *mocks.CatalogSource
	history *mocks.HistoryStorage
	audit   *mocks.AuditLog
	chooser *mocks.Chooser
	manager *Manager
}

func newManagerFixture(t *testing.T) *managerFixture {
	t.Helper()
	f := &managerFixture{
		catalog: mocks.NewCatalogSource(testCatalog(t)...),
		history: &mocks.HistoryStorage{},
		audit:   &mocks.AuditLog{},
		chooser: &mocks.Chooser{},
	}

	manager, err := NewManager(context.Background(), ManagerDeps{
		Catalog: f.catalog,
		History: f.history,
		Sampler: services.NewSampler(f.chooser, nil),
		Audit:   f.audit,
		Logger:  logging.Discard(),
	})
	require.NoError(t, err)
	f.manager = manager
	return f
}
