package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// historySchema defines the session history table.
const historySchema = `
CREATE TABLE IF NOT EXISTS sessions (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	rounds       INTEGER NOT NULL,
	work_seconds REAL NOT NULL,
	rest_seconds REAL NOT NULL,
	finished_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_finished ON sessions(finished_at);
`

// SessionRecord is one completed workout session.
type SessionRecord struct {
	ID          int64
	Rounds      int
	WorkSeconds float64
	RestSeconds float64
	FinishedAt  time.Time
}

// History is the SQLite-backed session log.
type History struct {
	db *sql.DB
}

// OpenHistory opens (and if needed creates) the history database.
func OpenHistory(path string) (*History, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	// SQLite allows a single writer; keep one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close releases the database handle.
func (history *History) Close() error {
	return history.db.Close()
}

// RecordSession appends a completed session and returns its id.
func (history *History) RecordSession(ctx context.Context, record SessionRecord) (int64, error) {
	result, err := history.db.ExecContext(ctx,
		`INSERT INTO sessions (rounds, work_seconds, rest_seconds, finished_at) VALUES (?, ?, ?, ?)`,
		record.Rounds, record.WorkSeconds, record.RestSeconds, record.FinishedAt.Unix())
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("session id: %w", err)
	}
	return id, nil
}

// RecentSessions returns up to limit sessions, newest first.
func (history *History) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := history.db.QueryContext(ctx,
		`SELECT id, rounds, work_seconds, rest_seconds, finished_at
		 FROM sessions ORDER BY finished_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var record SessionRecord
		var finished int64
		if err := rows.Scan(&record.ID, &record.Rounds, &record.WorkSeconds, &record.RestSeconds, &finished); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		record.FinishedAt = time.Unix(finished, 0)
		records = append(records, record)
	}
	return records, rows.Err()
}

// CompletedCount returns the total number of recorded sessions.
func (history *History) CompletedCount(ctx context.Context) (int, error) {
	var count int
	err := history.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}
