// Package storage keeps the session run journal in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; the journal is gone once the
// process exits.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the journal database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// End reasons recorded with a run.
const (
	ReasonContact   = "contact"
	ReasonQuit      = "quit"
	ReasonTickLimit = "tick_limit"
)

// RunRecord is one finished (or abandoned) game.
type RunRecord struct {
	ID      string
	MazeID  string
	Score   int
	Ticks   uint64
	Seed    int64
	Reason  string
	EndedAt time.Time
}

// Stats aggregates the runs of one maze.
type Stats struct {
	MazeID     string
	Runs       int
	BestScore  int
	AvgScore   float64
	TotalTicks int64
}

// OpenSession creates an empty journal.
func OpenSession() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			maze_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			reason TEXT NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(maze_id, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and drops the journal.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun appends a run and returns its generated id. A zero EndedAt is
// stamped with the current time.
func (s *Store) RecordRun(r RunRecord) (string, error) {
	if r.MazeID == "" {
		return "", errors.New("storage: run without maze id")
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = s.now()
	}
	if r.Reason == "" {
		r.Reason = ReasonContact
	}
	r.ID = uuid.NewString()

	_, err := s.db.Exec(
		`INSERT INTO runs (id, maze_id, score, ticks, seed, reason, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.MazeID, r.Score, int64(r.Ticks), r.Seed, r.Reason, r.EndedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record run: %w", err)
	}
	return r.ID, nil
}

// TopRuns returns the best runs for a maze, highest score first. Ties keep
// the order the runs were recorded in.
func (s *Store) TopRuns(mazeID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, maze_id, score, ticks, seed, reason, ended_at
		 FROM runs
		 WHERE maze_id = ?
		 ORDER BY score DESC, rowid ASC
		 LIMIT ?`,
		mazeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var ticks, endedAt int64
		if err := rows.Scan(&r.ID, &r.MazeID, &r.Score, &ticks, &r.Seed, &r.Reason, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.EndedAt = time.Unix(0, endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestScore returns the highest score recorded for a maze, or 0.
func (s *Store) BestScore(mazeID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE maze_id = ?",
		mazeID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates every run recorded for a maze.
func (s *Store) Stats(mazeID string) (Stats, error) {
	stats := Stats{MazeID: mazeID}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(ticks), 0)
		 FROM runs WHERE maze_id = ?`,
		mazeID,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.TotalTicks)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return stats, nil
}
