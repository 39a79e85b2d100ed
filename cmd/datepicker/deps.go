package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/adwaits94/datepicker/internal/application/handlers"
	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/domain/ports"
	"github.com/adwaits94/datepicker/internal/domain/services"
	"github.com/adwaits94/datepicker/internal/infrastructure/catalogfile"
	"github.com/adwaits94/datepicker/internal/infrastructure/config"
	"github.com/adwaits94/datepicker/internal/infrastructure/historydb/sqlite"
	"github.com/adwaits94/datepicker/internal/infrastructure/historyfile"
	"github.com/adwaits94/datepicker/internal/infrastructure/logging"
)

// Deps holds high-level dependencies for commands.
// Only the manager and handlers are exposed; storage stays internal.
type Deps struct {
	Config        *config.Config
	Manager       *handlers.Manager
	IdeaHandler   *handlers.IdeaHandler
	ImportHandler *handlers.ImportHandler
	ExportHandler *handlers.ExportHandler
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log)

	catalog, err := catalogfile.NewSource(cfg.CatalogPath(cwd), cfg.Catalog.Format)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}

	history, audit, closeHistory, err := openHistory(ctx, cfg, cwd)
	if err != nil {
		return err
	}
	defer closeHistory()

	manager, err := handlers.NewManager(ctx, handlers.ManagerDeps{
		Catalog: catalog,
		History: history,
		Sampler: services.NewSampler(newChooser(cfg.Sampling.Seed), services.NewLocationNormalizer(cfg.Sampling.LocationAliases)),
		Audit:   audit,
		Logger:  logger,
	})
	if err != nil {
		if errors.Is(err, entities.ErrStorageUnavailable) && !config.Exists(cwd) {
			return fmt.Errorf("%w (run 'datepicker init' first)", err)
		}
		return err
	}

	logger.Debug("dependencies ready",
		slog.String("catalog", catalog.Path()),
		slog.String("history_backend", cfg.History.Backend))

	return fn(&Deps{
		Config:        cfg,
		Manager:       manager,
		IdeaHandler:   handlers.NewIdeaHandler(services.NewCatalogService(catalog), manager),
		ImportHandler: handlers.NewImportHandler(services.NewImportService(catalog), manager),
		ExportHandler: handlers.NewExportHandler(),
	})
}

// openHistory builds the configured history backend. The sqlite backend
// also serves as the audit log; the json backend has none.
func openHistory(ctx context.Context, cfg *config.Config, cwd string) (ports.HistoryStorage, ports.AuditLog, func(), error) {
	path := cfg.HistoryPath(cwd)

	if cfg.History.Backend != config.BackendSQLite {
		return historyfile.NewStore(path), nil, func() {}, nil
	}

	repo, err := sqlite.NewRepository(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("creating sqlite repository: %w", err)
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		repo.Close()
		return nil, nil, nil, fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	return repo, repo, func() { repo.Close() }, nil
}

// newChooser returns the random source for sampling. A zero seed draws
// from the runtime's randomly seeded generator.
func newChooser(seed uint64) ports.Chooser {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
