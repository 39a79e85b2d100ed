package ports

import (
	"context"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

// AuditLog records user-visible mutations for later review.
type AuditLog interface {
	// LogAction logs an action to the audit log.
	LogAction(ctx context.Context, action, subject string, details map[string]any) error

	// ListActions returns the most recent entries, newest first.
	ListActions(ctx context.Context, limit int) ([]entities.AuditEntry, error)
}
