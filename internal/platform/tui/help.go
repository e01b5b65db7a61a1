package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/learnquest/internal/config"
)

// helpText builds the "How to play" page from the active tuning.
func helpText(cfg config.QuestConfig) string {
	rules := config.NewLevelRules(cfg)

	var b strings.Builder
	b.WriteString("OBJECTIVE:\n")
	b.WriteString("Learn Python programming concepts while playing a fun adventure game!\n\n")

	b.WriteString("CONTROLS:\n")
	b.WriteString("• Arrow keys or WASD move your character\n")
	b.WriteString("• Space or E opens a programming challenge\n")
	b.WriteString("• 1-4 or A-D picks an answer, Enter submits, X skips\n\n")

	b.WriteString("SCORING:\n")
	fmt.Fprintf(&b, "• Collect yellow coins: +%d points each\n", cfg.Scoring.Collectible)
	fmt.Fprintf(&b, "• Answer questions correctly: +%d points\n", cfg.Scoring.Correct)
	fmt.Fprintf(&b, "• Hit red obstacles: -%d points\n", cfg.Scoring.ObstaclePenalty)
	fmt.Fprintf(&b, "• Answer questions wrong: -%d points\n\n", cfg.Scoring.IncorrectPenalty)

	b.WriteString("LEVELS:\n")
	for level := 1; level <= rules.Max(); level++ {
		if rules.IsFinal(level) {
			fmt.Fprintf(&b, "• Level %d: need %d+ points to win\n", level, rules.Goal(level))
		} else {
			fmt.Fprintf(&b, "• Level %d: need %d points to advance\n", level, rules.Goal(level))
		}
	}
	b.WriteString("\n")

	b.WriteString("TIME LIMIT:\n")
	fmt.Fprintf(&b, "• Start with %d seconds\n", cfg.Timer.InitialSeconds)
	fmt.Fprintf(&b, "• Gain +%d seconds when you level up\n", cfg.Timer.LevelBonus)
	b.WriteString("• The clock keeps running while a question is open\n")
	b.WriteString("• Game ends when time runs out\n\n")

	b.WriteString("TIPS:\n")
	b.WriteString("• Focus on answering questions for the most points\n")
	b.WriteString("• You can skip questions if you're unsure\n")
	b.WriteString("• Enter your name at the end to make the high scores")

	return b.String()
}
