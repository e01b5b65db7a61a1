package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/learnquest/internal/config"
	"github.com/vovakirdan/learnquest/internal/quest"
)

func TestScoreFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learning_quest_scores.txt")
	f, err := OpenScoreFile(path)
	if err != nil {
		t.Fatalf("OpenScoreFile() failed: %v", err)
	}

	if f.Path() != path {
		t.Errorf("Path() = %q, expected %q", f.Path(), path)
	}

	rec := quest.ScoreRecord{Name: "Ada", Score: 120, Level: 3, Timestamp: "2024-05-17 14:03:09", SessionID: "s1"}
	if err := f.Persist(rec); err != nil {
		t.Fatalf("Persist() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "Ada,120,3,2024-05-17 14:03:09\n" {
		t.Errorf("file content = %q", data)
	}

	top, err := f.Top(10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(top))
	}
	// The text format has no session column
	rec.SessionID = ""
	if top[0] != rec {
		t.Errorf("round trip = %+v, expected %+v", top[0], rec)
	}
}

func TestScoreFileMissing(t *testing.T) {
	f, err := OpenScoreFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err != nil {
		t.Fatalf("OpenScoreFile() failed: %v", err)
	}

	top, err := f.Top(10)
	if err != nil {
		t.Fatalf("Top() on missing file: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected empty leaderboard, got %v", top)
	}
}

func TestScoreFileSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	content := "Ada,100,2,2024-05-17 14:03:09\n" +
		"\n" +
		"   \n" +
		"broken line\n" +
		"Bob,abc,1,2024-05-17 14:03:09\n" +
		"Cy,50,x,2024-05-17 14:03:09\n" +
		"Dee,75,1\n" +
		"Eve,200,3,2024-05-17 15:00:00,extra\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := OpenScoreFile(path)
	if err != nil {
		t.Fatalf("OpenScoreFile() failed: %v", err)
	}
	top, err := f.Top(10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}

	if len(top) != 2 {
		t.Fatalf("Expected 2 valid records, got %d: %v", len(top), top)
	}
	if top[0].Name != "Eve" || top[1].Name != "Ada" {
		t.Errorf("Unexpected order: %v", top)
	}
}

func TestScoreFileOrderingAndLimit(t *testing.T) {
	f, err := OpenScoreFile(filepath.Join(t.TempDir(), "scores.txt"))
	if err != nil {
		t.Fatalf("OpenScoreFile() failed: %v", err)
	}

	for i := 0; i < 12; i++ {
		f.Persist(quest.ScoreRecord{Name: string(rune('a' + i)), Score: (i % 4) * 10, Level: 1, Timestamp: "2024-05-17 14:03:09"})
	}

	top, err := f.Top(10)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != 10 {
		t.Fatalf("Expected 10 records, got %d", len(top))
	}

	// Scores 30 were written by d, h, l: ties keep file order
	for i, name := range []string{"d", "h", "l"} {
		if top[i].Name != name || top[i].Score != 30 {
			t.Errorf("top[%d] = %+v, expected %s with 30", i, top[i], name)
		}
	}
	for i := 1; i < len(top); i++ {
		if top[i].Score > top[i-1].Score {
			t.Fatalf("not sorted at %d: %v", i, top)
		}
	}
}

func TestScoreFileSanitizesNames(t *testing.T) {
	f, err := OpenScoreFile(filepath.Join(t.TempDir(), "scores.txt"))
	if err != nil {
		t.Fatalf("OpenScoreFile() failed: %v", err)
	}

	f.Persist(quest.ScoreRecord{Name: "Smith, J\nr", Score: 10, Level: 1, Timestamp: "2024-05-17 14:03:09"})

	top, _ := f.Top(10)
	if len(top) != 1 || top[0].Name != "Smith  J r" || top[0].Score != 10 {
		t.Errorf("sanitized record = %+v", top)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     config.ScoresConfig
		wantErr bool
	}{
		{"file", config.ScoresConfig{Backend: config.BackendFile, Path: filepath.Join(dir, "a.txt")}, false},
		{"empty means file", config.ScoresConfig{Path: filepath.Join(dir, "b.txt")}, false},
		{"sqlite", config.ScoresConfig{Backend: config.BackendSQLite, Path: filepath.Join(dir, "c.db")}, false},
		{"unknown", config.ScoresConfig{Backend: "redis", Path: filepath.Join(dir, "d")}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Open(tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() failed: %v", err)
			}
			defer b.Close()

			rec := quest.ScoreRecord{Name: "Ada", Score: 42, Level: 1, Timestamp: "2024-05-17 14:03:09"}
			if err := b.Persist(rec); err != nil {
				t.Fatalf("Persist() failed: %v", err)
			}
			top, err := b.Top(10)
			if err != nil || len(top) != 1 || top[0].Score != 42 {
				t.Errorf("Top() = %v, %v", top, err)
			}
		})
	}
}
