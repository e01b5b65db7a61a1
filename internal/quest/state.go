package quest

import (
	"strings"

	"github.com/vovakirdan/learnquest/internal/core"
)

// Phase is the engine's state machine position.
type Phase int

const (
	PhaseIdle        Phase = iota // before the first Start
	PhaseActive                   // playable
	PhaseAdvancing                // transient, during a level change
	PhaseTimeExpired              // terminal: the countdown reached zero
	PhaseVictory                  // terminal: advanced past the final level
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseAdvancing:
		return "advancing"
	case PhaseTimeExpired:
		return "time-expired"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the game.
func (p Phase) Terminal() bool {
	return p == PhaseTimeExpired || p == PhaseVictory
}

// Snapshot is a read-only copy of the game state handed to observers.
type Snapshot struct {
	SessionID     string
	Phase         Phase
	Active        bool
	Score         int
	Level         int
	Goal          int
	TimeRemaining int
	Avatar        core.Vec
	Achievements  []string
	Field         Field
	Question      *Question // open question, nil if none
}

// Outcome describes how a game ended. It doubles as the request to persist a
// score record.
type Outcome struct {
	SessionID     string
	Phase         Phase
	Score         int
	Level         int
	TimeRemaining int
}

// Observer receives state changes. Render is called after every mutation;
// GameOver once per game, right after the terminal Render.
type Observer interface {
	Render(s Snapshot)
	GameOver(o Outcome)
}

// NopObserver ignores every notification.
type NopObserver struct{}

// Render implements Observer.
func (NopObserver) Render(Snapshot) {}

// GameOver implements Observer.
func (NopObserver) GameOver(Outcome) {}

// Recorder persists finished games.
type Recorder interface {
	Persist(rec ScoreRecord) error
}

// ScoreRecord is one finished game. Timestamp uses TimestampLayout.
type ScoreRecord struct {
	Name      string
	Score     int
	Level     int
	Timestamp string
	SessionID string
}

// TimestampLayout is the score record time format (YYYY-MM-DD HH:MM:SS).
const TimestampLayout = "2006-01-02 15:04:05"

var nameReplacer = strings.NewReplacer(",", " ", "\n", " ", "\r", " ")

// CleanName returns name as it is stored: commas and line breaks become
// spaces and surrounding blanks are trimmed.
func CleanName(name string) string {
	return strings.TrimSpace(nameReplacer.Replace(name))
}
