package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"btr/internal/config"
	"btr/internal/domain"
)

const sqlTimeLayout = "2006-01-02 15:04:05"

// HistoryStore records run summaries in a MySQL database so runs can be
// compared over time. It is optional: an empty DSN disables it.
type HistoryStore struct {
	config *config.Config
}

// HistoryEntry is one recorded run summary
type HistoryEntry struct {
	ID        int64
	Timestamp time.Time
	Passed    int
	Failed    int
	Total     int
	Duration  time.Duration
	Workers   int
}

// NewHistoryStore creates a new HistoryStore
func NewHistoryStore(cfg *config.Config) *HistoryStore {
	return &HistoryStore{config: cfg}
}

// Enabled reports whether a history database is configured.
func (h *HistoryStore) Enabled() bool {
	return h.config.HistoryDSN != ""
}

func (h *HistoryStore) open() (*sql.DB, error) {
	db, err := sql.Open("mysql", h.config.HistoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}
	if err := h.ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (h *HistoryStore) ensureSchema(db *sql.DB) error {
	const ddl = `CREATE TABLE IF NOT EXISTS runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		passed INT NOT NULL,
		failed INT NOT NULL,
		total INT NOT NULL,
		duration_ms BIGINT NOT NULL,
		workers INT NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create runs table: %w", err)
	}
	return nil
}

// Record stores one run summary. Callers treat failures as non-fatal:
// a broken history database must never fail a completed run.
func (h *HistoryStore) Record(report domain.Report, duration time.Duration, workers int) error {
	db, err := h.open()
	if err != nil {
		return err
	}
	defer db.Close()

	// Times travel as strings so the driver works without parseTime=true.
	_, err = db.Exec(
		"INSERT INTO runs (started_at, passed, failed, total, duration_ms, workers) VALUES (?, ?, ?, ?, ?, ?)",
		time.Now().UTC().Format(sqlTimeLayout), report.Passed, report.Failed, report.Total, duration.Milliseconds(), workers,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit run summaries, newest first.
func (h *HistoryStore) Recent(limit int) ([]HistoryEntry, error) {
	db, err := h.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(
		"SELECT id, started_at, passed, failed, total, duration_ms, workers FROM runs ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var startedAt string
		var durationMs int64
		if err := rows.Scan(&e.ID, &startedAt, &e.Passed, &e.Failed, &e.Total, &durationMs, &e.Workers); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		e.Timestamp, _ = time.Parse(sqlTimeLayout, startedAt)
		e.Duration = time.Duration(durationMs) * time.Millisecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
