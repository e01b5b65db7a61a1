// Package storage persists finished Learning Quest games. Two backends share
// one contract: an append-only text file (the default) and SQLite through the
// pure-Go modernc.org/sqlite driver.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/learnquest/internal/config"
	"github.com/vovakirdan/learnquest/internal/quest"
)

// DefaultLimit is how many scores a leaderboard shows.
const DefaultLimit = 10

// Backend stores score records and reads back the leaderboard.
type Backend interface {
	quest.Recorder
	// Top returns at most limit records, best score first. Records with equal
	// scores keep their insertion order.
	Top(limit int) ([]quest.ScoreRecord, error)
	Close() error
}

// Open returns the backend selected by cfg. On error the returned Backend is
// nil.
func Open(cfg config.ScoresConfig) (Backend, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		f, err := OpenScoreFile(cfg.Path)
		if err != nil {
			return nil, err
		}
		return f, nil
	case config.BackendSQLite:
		s, err := OpenSQLite(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}

// prepare expands ~ and creates the parent directories of path.
func prepare(path string) (string, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return "", fmt.Errorf("storage: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
