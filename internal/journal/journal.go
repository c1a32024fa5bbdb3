// Package journal records the session's input events in an in-memory SQLite
// database. Nothing is written to disk.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Event kinds.
const (
	KindAdd    = "add"
	KindRemove = "remove"
	KindEdit   = "edit"
	KindView   = "view"
)

// Entry is one recorded input event. Index is -1 when not applicable.
type Entry struct {
	ID       int64
	At       time.Time
	Kind     string
	Position string
	Index    int
	Field    string
	Value    string
	Err      string
}

// Journal wraps the in-memory SQLite activity log.
type Journal struct {
	db *sql.DB
}

// Open creates an empty journal.
func Open() (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Every pooled connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return j, nil
}

// Close releases the database. The journal contents are discarded.
func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY,
			at TEXT NOT NULL,
			kind TEXT NOT NULL,
			position TEXT NOT NULL,
			idx INTEGER NOT NULL,
			field TEXT NOT NULL,
			value TEXT NOT NULL,
			err TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);`,
	}
	for _, stmt := range stmts {
		if _, err := j.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to migrate journal: %w", err)
		}
	}
	return nil
}

// Record appends an entry and returns its id. A zero At is set to now.
func (j *Journal) Record(ctx context.Context, e Entry) (int64, error) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	res, err := j.db.ExecContext(ctx,
		`INSERT INTO events (at, kind, position, idx, field, value, err)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.At.Format(time.RFC3339Nano),
		e.Kind,
		e.Position,
		e.Index,
		e.Field,
		e.Value,
		e.Err,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Recent returns up to n entries, newest first.
func (j *Journal) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, at, kind, position, idx, field, value, err
		FROM events
		ORDER BY id DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.ID, &at, &e.Kind, &e.Position, &e.Index, &e.Field, &e.Value, &e.Err); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, err
		}
		e.At = parsed
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// CountByKind returns how many events of each kind were recorded. Failed
// events are included.
func (j *Journal) CountByKind(ctx context.Context) (map[string]int, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM events GROUP BY kind`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	counts := map[string]int{}
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[kind] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// Describe renders an entry as a short status line.
func (e Entry) Describe() string {
	var s string
	switch e.Kind {
	case KindAdd:
		s = fmt.Sprintf("added player to %s", e.Position)
	case KindRemove:
		s = fmt.Sprintf("removed %s #%d", e.Position, e.Index+1)
	case KindEdit:
		s = fmt.Sprintf("set %s #%d %s = %q", e.Position, e.Index+1, e.Field, e.Value)
	case KindView:
		s = fmt.Sprintf("switched to %s", e.Value)
	default:
		s = e.Kind
	}
	if e.Err != "" {
		s += " (failed: " + e.Err + ")"
	}
	return s
}
