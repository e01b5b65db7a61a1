package quest

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/learnquest/internal/config"
)

func TestBankFallsBackToLevelOne(t *testing.T) {
	b := NewBank(testBank(), rand.New(rand.NewSource(1)))

	tests := []struct {
		level    int
		expected string
	}{
		{1, "What is 1+1?"},
		{2, "What is 2+2?"},
		{3, "What is 1+1?"},
		{99, "What is 1+1?"},
	}

	for _, tc := range tests {
		qs := b.QuestionsFor(tc.level)
		if len(qs) != 1 || qs[0].Prompt != tc.expected {
			t.Errorf("QuestionsFor(%d) = %+v, expected %q", tc.level, qs, tc.expected)
		}
	}
}

func TestBankPickRandom(t *testing.T) {
	cfg, err := config.LoadQuestions("")
	if err != nil {
		t.Fatalf("LoadQuestions: %v", err)
	}
	b := NewBank(cfg, rand.New(rand.NewSource(99)))

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		q, err := b.PickRandom(2)
		if err != nil {
			t.Fatalf("PickRandom: %v", err)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %q has %d options", q.Prompt, len(q.Options))
		}
		seen[q.Prompt] = true
	}
	if len(seen) != len(b.QuestionsFor(2)) {
		t.Errorf("200 picks covered %d of %d questions", len(seen), len(b.QuestionsFor(2)))
	}
}

func TestBankEmptyLevelFallsBack(t *testing.T) {
	cfg := testBank()
	cfg.Levels[2] = nil
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	b := NewBank(cfg, rand.New(rand.NewSource(1)))

	q, err := b.PickRandom(2)
	if err != nil {
		t.Fatalf("PickRandom(2): %v", err)
	}
	if q.Prompt != "What is 1+1?" {
		t.Errorf("PickRandom(2) = %q, expected the level 1 question", q.Prompt)
	}
}

func TestBankEmpty(t *testing.T) {
	b := NewBank(config.QuestionBankConfig{}, rand.New(rand.NewSource(1)))
	if _, err := b.PickRandom(1); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("PickRandom on empty bank: err = %v, expected ErrNoQuestions", err)
	}
}

func TestValidateSelection(t *testing.T) {
	q := Question{Prompt: "p", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2}

	tests := []struct {
		index    int
		expected error
	}{
		{NoSelection, ErrNoSelection},
		{-2, ErrInvalidSelection},
		{4, ErrInvalidSelection},
		{0, nil},
		{3, nil},
	}

	for _, tc := range tests {
		err := ValidateSelection(q, tc.index)
		if !errors.Is(err, tc.expected) {
			t.Errorf("ValidateSelection(%d) = %v, expected %v", tc.index, err, tc.expected)
		}
	}
}

func TestEvaluate(t *testing.T) {
	q := Question{Prompt: "p", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2}

	for i := 0; i < 4; i++ {
		if got := Evaluate(q, i); got != (i == 2) {
			t.Errorf("Evaluate(%d) = %v", i, got)
		}
	}
	if q.CorrectOption() != "c" {
		t.Errorf("CorrectOption() = %q, expected c", q.CorrectOption())
	}
}

func TestBankCopiesOptions(t *testing.T) {
	cfg := testBank()
	b := NewBank(cfg, rand.New(rand.NewSource(1)))
	cfg.Levels[1][0].Options[0] = "changed"

	if b.QuestionsFor(1)[0].Options[0] != "1" {
		t.Error("bank should not alias the config slices")
	}
}
