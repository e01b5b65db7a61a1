package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/vovakirdan/learnquest/internal/quest"
)

// ScoreFile is the plain text backend. Each line is
// "name,score,level,timestamp"; the file is only ever appended to.
type ScoreFile struct {
	path string
}

// OpenScoreFile prepares a score file at path. The file itself is created on
// the first Persist.
func OpenScoreFile(path string) (*ScoreFile, error) {
	path, err := prepare(path)
	if err != nil {
		return nil, err
	}
	return &ScoreFile{path: path}, nil
}

// Path returns the resolved file path.
func (f *ScoreFile) Path() string {
	return f.path
}

// Persist appends rec as one line.
func (f *ScoreFile) Persist(rec quest.ScoreRecord) error {
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open score file: %w", err)
	}

	line := fmt.Sprintf("%s,%d,%d,%s\n", sanitizeName(rec.Name), rec.Score, rec.Level, rec.Timestamp)
	if _, err := file.WriteString(line); err != nil {
		file.Close()
		return fmt.Errorf("storage: cannot write score: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("storage: cannot write score: %w", err)
	}
	return nil
}

// Top reads every well-formed line and returns the best limit records.
// A missing file is an empty leaderboard.
func (f *ScoreFile) Top(limit int) ([]quest.ScoreRecord, error) {
	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open score file: %w", err)
	}
	defer file.Close()

	var records []quest.ScoreRecord
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if rec, ok := parseLine(scanner.Text()); ok {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot read score file: %w", err)
	}

	return rank(records, limit), nil
}

// Close implements Backend. The file is not held open between calls.
func (f *ScoreFile) Close() error {
	return nil
}

// parseLine decodes one score line. Blank lines, lines with fewer than four
// fields and lines with a non-numeric score or level are rejected.
func parseLine(line string) (quest.ScoreRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return quest.ScoreRecord{}, false
	}

	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return quest.ScoreRecord{}, false
	}
	score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return quest.ScoreRecord{}, false
	}
	level, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return quest.ScoreRecord{}, false
	}

	return quest.ScoreRecord{
		Name:      parts[0],
		Score:     score,
		Level:     level,
		Timestamp: parts[3],
	}, true
}

// rank sorts records best first, keeping file order among equal scores, and
// caps the result.
func rank(records []quest.ScoreRecord, limit int) []quest.ScoreRecord {
	slices.SortStableFunc(records, func(a, b quest.ScoreRecord) int {
		return b.Score - a.Score
	})
	if limit = normalizeLimit(limit); len(records) > limit {
		records = records[:limit]
	}
	return records
}

// sanitizeName keeps a player name from breaking the line format.
func sanitizeName(name string) string {
	return quest.CleanName(name)
}
