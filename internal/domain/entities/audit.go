package entities

import "time"

// Audit actions recorded by the manager.
const (
	ActionHistoryRecord   = "history.record"
	ActionHistoryClear    = "history.clear"
	ActionHistoryTruncate = "history.truncate"
	ActionCatalogSave     = "catalog.save"
)

// AuditEntry represents a logged action in the system.
type AuditEntry struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Subject   string         `json:"subject,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
