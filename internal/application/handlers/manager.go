package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/adwaits94/datepicker/internal/domain/entities"
	"github.com/adwaits94/datepicker/internal/domain/ports"
	"github.com/adwaits94/datepicker/internal/domain/services"
)

// ManagerDeps holds the collaborators of a Manager. Audit and Logger are
// optional.
type ManagerDeps struct {
	Catalog ports.CatalogSource
	History ports.HistoryStorage
	Sampler *services.Sampler
	Audit   ports.AuditLog
	Logger  *slog.Logger
}

// Manager is the entry point for the date workflow: it owns the loaded
// catalog and the history log and ties sampling, recording and analysis
// together.
//
// A Manager is meant for one caller at a time.
type Manager struct {
	source  ports.CatalogSource
	ideas   []entities.Idea
	history *services.HistoryStore
	sampler *services.Sampler
	audit   ports.AuditLog
	logger  *slog.Logger
}

// NewManager loads the catalog and the history log. It fails when the
// catalog cannot be loaded; an unreadable history only logs a warning.
func NewManager(ctx context.Context, deps ManagerDeps) (*Manager, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ideas, err := deps.Catalog.LoadIdeas(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading catalog: %w", entities.ErrStorageUnavailable, err)
	}
	logger.Debug("catalog loaded", slog.Int("ideas", len(ideas)))

	return &Manager{
		source:  deps.Catalog,
		ideas:   ideas,
		history: services.NewHistoryStore(ctx, deps.History, logger),
		sampler: deps.Sampler,
		audit:   deps.Audit,
		logger:  logger,
	}, nil
}

// Ideas returns the loaded catalog. The slice is a copy.
func (m *Manager) Ideas() []entities.Idea {
	return slices.Clone(m.ideas)
}

// SampleIdea picks one catalog idea matching params, or nil when none does.
func (m *Manager) SampleIdea(params services.SampleParams) (*entities.Idea, error) {
	idea, err := m.sampler.Sample(m.ideas, params)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		m.logger.Debug("no idea matches",
			slog.String("liked_by", params.LikedBy),
			slog.String("location", params.Location))
	}
	return idea, nil
}

// RecordDate appends idea to the history with the per-person cost for
// partySize. An empty date means today; otherwise it must be YYYY-MM-DD.
func (m *Manager) RecordDate(ctx context.Context, idea entities.Idea, partySize int, date string) (entities.HistoryRecord, error) {
	if partySize < 0 {
		return entities.HistoryRecord{}, fmt.Errorf("%w: party size must not be negative (got %d)", entities.ErrInvalidArgument, partySize)
	}
	if date != "" {
		if _, err := time.Parse(entities.DateLayout, date); err != nil {
			return entities.HistoryRecord{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", entities.ErrInvalidArgument, date)
		}
	}

	cost := services.PerPersonCost(idea, partySize)
	record, err := m.history.Append(ctx, idea.Name(), date, &cost)
	if err != nil {
		return entities.HistoryRecord{}, fmt.Errorf("recording %q: %w", idea.Name(), err)
	}

	m.logger.Info("date recorded",
		slog.String("idea", record.ActivityName),
		slog.String("date", record.Date),
		slog.Float64("cost_per_person", cost))
	m.logAudit(ctx, entities.ActionHistoryRecord, record.ActivityName, map[string]any{
		"id":              record.ID,
		"date":            record.Date,
		"party_size":      partySize,
		"cost_per_person": cost,
	})
	return record, nil
}

// ClearHistory deletes every history record.
func (m *Manager) ClearHistory(ctx context.Context) error {
	removed := m.history.Len()
	if err := m.history.Clear(ctx); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}

	m.logger.Info("history cleared", slog.Int("removed", removed))
	m.logAudit(ctx, entities.ActionHistoryClear, "", map[string]any{"removed": removed})
	return nil
}

// ClearLastHistory deletes the most recent n records and returns how many
// were removed.
func (m *Manager) ClearLastHistory(ctx context.Context, n int) (int, error) {
	before := m.history.Len()
	if err := m.history.TruncateLast(ctx, n); err != nil {
		return 0, fmt.Errorf("clearing last %d records: %w", n, err)
	}
	removed := before - m.history.Len()
	if removed == 0 {
		return 0, nil
	}

	m.logger.Info("history truncated", slog.Int("removed", removed))
	m.logAudit(ctx, entities.ActionHistoryTruncate, "", map[string]any{"removed": removed})
	return removed, nil
}

// GetHistory returns the history in insertion order. The slice is a copy.
func (m *Manager) GetHistory() []entities.HistoryRecord {
	return m.history.All()
}

// Analyze returns the balancing suggestions for the current catalog and
// history.
func (m *Manager) Analyze() []string {
	return m.Analysis().SuggestionStrings()
}

// Analysis returns the suggestions together with the counts behind them.
func (m *Manager) Analysis() entities.Analysis {
	return services.Analyze(m.ideas, m.history.All())
}

// Charts returns chart data comparing first and second; empty names pick
// the first two people in the catalog.
func (m *Manager) Charts(first, second string) entities.ChartData {
	return services.ChartData(m.ideas, m.history.All(), first, second)
}

// ReloadCatalog rereads the catalog. On failure the previous catalog stays
// loaded.
func (m *Manager) ReloadCatalog(ctx context.Context) error {
	ideas, err := m.source.LoadIdeas(ctx)
	if err != nil {
		return fmt.Errorf("%w: reloading catalog: %w", entities.ErrStorageUnavailable, err)
	}
	m.ideas = ideas
	m.logger.Debug("catalog reloaded", slog.Int("ideas", len(ideas)))
	return nil
}

// CatalogSaved reloads the catalog after an edit and records the change.
func (m *Manager) CatalogSaved(ctx context.Context, operation, subject string) error {
	m.logAudit(ctx, entities.ActionCatalogSave, subject, map[string]any{"operation": operation})
	return m.ReloadCatalog(ctx)
}

// AuditEnabled reports whether actions are being recorded.
func (m *Manager) AuditEnabled() bool {
	return m.audit != nil
}

// AuditEntries returns the most recent audit entries, newest first. It
// returns nothing when no audit log is wired.
func (m *Manager) AuditEntries(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	if m.audit == nil {
		return nil, nil
	}
	entries, err := m.audit.ListActions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing audit log: %w", err)
	}
	return entries, nil
}

// logAudit records an action. The action itself already succeeded, so a
// failure here is only logged.
func (m *Manager) logAudit(ctx context.Context, action, subject string, details map[string]any) {
	if m.audit == nil {
		return
	}
	if err := m.audit.LogAction(ctx, action, subject, details); err != nil {
		m.logger.Warn("audit log write failed",
			slog.String("action", action),
			slog.String("error", err.Error()))
	}
}
