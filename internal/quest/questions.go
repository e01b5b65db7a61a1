package quest

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/learnquest/internal/config"
)

// NoSelection is the answer index meaning "nothing chosen yet".
const NoSelection = -1

// Question is an immutable multiple-choice question.
type Question struct {
	Prompt       string
	Options      []string
	CorrectIndex int
}

// CorrectOption returns the text of the right answer.
func (q Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// Bank holds question sets keyed by level.
type Bank struct {
	sets map[int][]Question
	rng  *rand.Rand
}

// NewBank builds a bank from the YAML question sets.
func NewBank(cfg config.QuestionBankConfig, rng *rand.Rand) *Bank {
	sets := make(map[int][]Question, len(cfg.Levels))
	for level, qs := range cfg.Levels {
		set := make([]Question, 0, len(qs))
		for _, q := range qs {
			set = append(set, Question{
				Prompt:       q.Prompt,
				Options:      append([]string(nil), q.Options...),
				CorrectIndex: q.Answer,
			})
		}
		sets[level] = set
	}
	return &Bank{sets: sets, rng: rng}
}

// QuestionsFor returns the set for level, falling back to level 1 when the
// level has no questions.
func (b *Bank) QuestionsFor(level int) []Question {
	if qs := b.sets[level]; len(qs) > 0 {
		return qs
	}
	return b.sets[1]
}

// PickRandom returns a uniformly random question for level. Repeats across
// calls are allowed.
func (b *Bank) PickRandom(level int) (Question, error) {
	qs := b.QuestionsFor(level)
	if len(qs) == 0 {
		return Question{}, fmt.Errorf("%w (level %d)", ErrNoQuestions, level)
	}
	return qs[b.rng.Intn(len(qs))], nil
}

// ValidateSelection rejects a missing or out-of-range answer before it is
// evaluated.
func ValidateSelection(q Question, index int) error {
	if index == NoSelection {
		return ErrNoSelection
	}
	if index < 0 || index >= len(q.Options) {
		return fmt.Errorf("%w: %d", ErrInvalidSelection, index)
	}
	return nil
}

// Evaluate reports whether index is the correct answer.
func Evaluate(q Question, index int) bool {
	return index == q.CorrectIndex
}
