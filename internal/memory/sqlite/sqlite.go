package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/srobertson/xlit/internal/memory"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Repository implements memory.Repository using SQLite
type Repository struct {
	db *sql.DB
}

// New opens (or creates) the translation memory at dbPath. Use ":memory:"
// for an ephemeral store.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// Schema is idempotent, so apply it unconditionally
	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	slog.Debug("opened translation memory", "path", dbPath)
	return &Repository{db: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) SaveSegments(ctx context.Context, params []memory.SaveSegmentParams) error {
	if len(params) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO segments (method, source, target)
		VALUES (?, ?, ?)
		ON CONFLICT (method, source, target) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range params {
		if _, err := stmt.ExecContext(ctx, p.Method, p.Source, p.Target); err != nil {
			return fmt.Errorf("inserting segment: %w", err)
		}
	}

	return tx.Commit()
}

func (r *Repository) ListSegmentsByMethod(ctx context.Context, method string) ([]memory.Segment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, method, source, target, created_at
		FROM segments
		WHERE method = ?
		ORDER BY id ASC
	`, method)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSegments(rows)
}

func (r *Repository) Methods(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT method FROM segments ORDER BY method
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

func (r *Repository) CountSegments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM segments`).Scan(&count)
	return count, err
}

func scanSegments(rows *sql.Rows) ([]memory.Segment, error) {
	var segments []memory.Segment
	for rows.Next() {
		var s memory.Segment
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Method, &s.Source, &s.Target, &createdAt); err != nil {
			return nil, err
		}
		s.CreatedAt = parseTimestamp(createdAt)
		segments = append(segments, s)
	}
	return segments, rows.Err()
}

// parseTimestamp handles SQLite's default CURRENT_TIMESTAMP format.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
