package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/learnquest/internal/quest"
)

// Store is the SQLite backend.
type Store struct {
	db *sql.DB
}

// Stats aggregates every recorded game.
type Stats struct {
	Games      int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	LastPlayed time.Time
}

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*Store, error) {
	dbPath, err := prepare(dbPath)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			recorded_at TEXT NOT NULL,
			session_id TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC, id ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Persist inserts one record.
func (s *Store) Persist(rec quest.ScoreRecord) error {
	_, err := s.db.Exec(
		"INSERT INTO scores (name, score, level, recorded_at, session_id) VALUES (?, ?, ?, ?, ?)",
		rec.Name, rec.Score, rec.Level, rec.Timestamp, rec.SessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// Top retrieves the best limit records. Ties keep insertion order.
func (s *Store) Top(limit int) ([]quest.ScoreRecord, error) {
	rows, err := s.db.Query(
		`SELECT name, score, level, recorded_at, session_id
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		normalizeLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var records []quest.ScoreRecord
	for rows.Next() {
		var rec quest.ScoreRecord
		if err := rows.Scan(&rec.Name, &rec.Score, &rec.Level, &rec.Timestamp, &rec.SessionID); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats returns aggregated statistics over all recorded games.
func (s *Store) Stats() (Stats, error) {
	var stats Stats
	var last sql.NullString

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(MAX(level), 0), MAX(recorded_at)
		 FROM scores`,
	).Scan(&stats.Games, &stats.HighScore, &stats.AvgScore, &stats.BestLevel, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if last.Valid {
		if parsed, err := time.ParseInLocation(quest.TimestampLayout, last.String, time.Local); err == nil {
			stats.LastPlayed = parsed
		}
	}
	return stats, nil
}
