package config

import (
	"errors"
	"fmt"
	"sort"
)

// OptionsPerQuestion is the number of answer options every question carries.
const OptionsPerQuestion = 4

// QuestionConfig is one multiple-choice question as stored in YAML.
type QuestionConfig struct {
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
	Answer  int      `yaml:"answer"` // index into Options
}

// QuestionBankConfig holds question sets keyed by level.
type QuestionBankConfig struct {
	Levels map[int][]QuestionConfig `yaml:"levels"`
}

// LevelNumbers returns the levels that have a question set, ascending.
func (b QuestionBankConfig) LevelNumbers() []int {
	levels := make([]int, 0, len(b.Levels))
	for l := range b.Levels {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	return levels
}

// Validate checks that every question has exactly four options and a valid
// answer index, and that level 1 (the fallback set) is present.
func (b QuestionBankConfig) Validate() error {
	if len(b.Levels[1]) == 0 {
		return errors.New("config: question bank has no level 1 questions")
	}
	for _, level := range b.LevelNumbers() {
		for i, q := range b.Levels[level] {
			if q.Prompt == "" {
				return fmt.Errorf("config: level %d question %d has an empty prompt", level, i+1)
			}
			if len(q.Options) != OptionsPerQuestion {
				return fmt.Errorf("config: level %d question %d has %d options, want %d",
					level, i+1, len(q.Options), OptionsPerQuestion)
			}
			if q.Answer < 0 || q.Answer >= len(q.Options) {
				return fmt.Errorf("config: level %d question %d has answer index %d out of range",
					level, i+1, q.Answer)
			}
		}
	}
	return nil
}
