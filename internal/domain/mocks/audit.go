package mocks

import (
	"context"
	"time"

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

// AuditLog is a mock implementation of ports.AuditLog.
type AuditLog struct {
	Entries []entities.AuditEntry
	Err     error
}

// LogAction appends an entry.
func (m *AuditLog) LogAction(_ context.Context, action, subject string, details map[string]any) error {
	if m.Err != nil {
		return m.Err
	}
	m.Entries = append(m.Entries, entities.AuditEntry{
		Action:    action,
		Subject:   subject,
		Details:   details,
		CreatedAt: time.Now(),
	})
	return nil
}

// ListActions returns entries newest first.
func (m *AuditLog) ListActions(_ context.Context, limit int) ([]entities.AuditEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.AuditEntry, 0, len(m.Entries))
	for i := len(m.Entries) - 1; i >= 0 && (limit <= 0 || len(result) < limit); i-- {
		result = append(result, m.Entries[i])
	}
	return result, nil
}

// Actions returns just the action names, oldest first.
func (m *AuditLog) Actions() []string {
	names := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		names[i] = e.Action
	}
	return names
}
