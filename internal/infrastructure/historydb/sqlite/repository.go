// Package sqlite provides a SQLite implementation of the history storage and
// audit log ports.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/adwaits94/datepicker/internal/domain/entities"
)

// insertBatchSize bounds the rows per INSERT so the statement stays under
// SQLite's bound-variable limit.
const insertBatchSize = 500

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// builder produces queries with SQLite "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Repository implements ports.HistoryStorage and ports.AuditLog using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository opens the database at path. ":memory:" opens a private
// in-memory database.
func NewRepository(path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// One connection: SQLite serializes writers anyway, and every
	// connection to ":memory:" would otherwise see its own database.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Accepted dates, in insertion order
	CREATE TABLE IF NOT EXISTS history (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL DEFAULT '',
		activity_name TEXT NOT NULL,
		date TEXT NOT NULL,
		cost_per_person REAL
	);
	CREATE INDEX IF NOT EXISTS idx_history_activity ON history(activity_name);

	-- Audit log (tracks all actions)
	CREATE TABLE IF NOT EXISTS audit_log (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		action TEXT NOT NULL,
		subject TEXT,
		details TEXT,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action);
	CREATE INDEX IF NOT EXISTS idx_audit_log_created ON audit_log(created_at);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// LoadHistory returns every record in insertion order.
func (r *Repository) LoadHistory(ctx context.Context) ([]entities.HistoryRecord, error) {
	query, args, err := builder.
		Select("id", "activity_name", "date", "cost_per_person").
		From("history").
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building history query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	records := []entities.HistoryRecord{}
	for rows.Next() {
		var record entities.HistoryRecord
		var cost sql.NullFloat64
		if err := rows.Scan(&record.ID, &record.ActivityName, &record.Date, &cost); err != nil {
			return nil, fmt.Errorf("scanning history record: %w", err)
		}
		if cost.Valid {
			record.CostPerPerson = entities.Float64(cost.Float64)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// SaveHistory replaces the whole log in one transaction; on failure the
// stored log is unchanged.
func (r *Repository) SaveHistory(ctx context.Context, records []entities.HistoryRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := builder.Delete("history").RunWith(tx).ExecContext(ctx); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}

	for start := 0; start < len(records); start += insertBatchSize {
		end := min(start+insertBatchSize, len(records))
		insert := builder.
			Insert("history").
			Columns("id", "activity_name", "date", "cost_per_person")
		for _, record := range records[start:end] {
			var cost sql.NullFloat64
			if record.CostPerPerson != nil {
				cost = sql.NullFloat64{Float64: *record.CostPerPerson, Valid: true}
			}
			insert = insert.Values(record.ID, record.ActivityName, record.Date, cost)
		}
		if _, err := insert.RunWith(tx).ExecContext(ctx); err != nil {
			return fmt.Errorf("inserting history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing history: %w", err)
	}
	return nil
}

// CountHistory returns the number of stored records.
func (r *Repository) CountHistory(ctx context.Context) (int, error) {
	var count int
	err := builder.Select("COUNT(*)").From("history").
		RunWith(r.db).QueryRowContext(ctx).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting history: %w", err)
	}
	return count, nil
}

// LogAction logs an action to the audit log.
func (r *Repository) LogAction(ctx context.Context, action, subject string, details map[string]any) error {
	var detailsJSON sql.NullString
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshaling details: %w", err)
		}
		detailsJSON = sql.NullString{String: string(data), Valid: true}
	}

	var subjectPtr sql.NullString
	if subject != "" {
		subjectPtr = sql.NullString{String: subject, Valid: true}
	}

	_, err := builder.
		Insert("audit_log").
		Columns("id", "action", "subject", "details", "created_at").
		Values(generateUUID(), action, subjectPtr, detailsJSON, timeNow().UTC()).
		RunWith(r.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("logging action: %w", err)
	}
	return nil
}

// ListActions returns the most recent audit entries, newest first.
// A limit of zero or less returns every entry.
func (r *Repository) ListActions(ctx context.Context, limit int) ([]entities.AuditEntry, error) {
	query := builder.
		Select("id", "action", "subject", "details", "created_at").
		From("audit_log").
		OrderBy("seq DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	return r.queryAuditLog(ctx, query, limit)
}

// queryAuditLog is a helper to execute audit log queries.
func (r *Repository) queryAuditLog(ctx context.Context, query sq.SelectBuilder, limit int) ([]entities.AuditEntry, error) {
	rows, err := query.RunWith(r.db).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	// Use limit parameter as capacity hint if available
	var entries []entities.AuditEntry
	if limit > 0 {
		entries = make([]entities.AuditEntry, 0, limit)
	}

	for rows.Next() {
		var entry entities.AuditEntry
		var subject, details sql.NullString

		if err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&subject,
			&details,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		entry.Subject = subject.String

		if details.Valid && details.String != "" {
			if err := json.Unmarshal([]byte(details.String), &entry.Details); err != nil {
				return nil, fmt.Errorf("unmarshaling details: %w", err)
			}
		}

		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
