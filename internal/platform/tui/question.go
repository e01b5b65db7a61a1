package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/learnquest/internal/quest"
)

// questionModal is the open question and the player's current choice.
type questionModal struct {
	question    quest.Question
	level       int
	selected    int
	confirmSkip bool
}

func newQuestionModal(q quest.Question, level int) questionModal {
	return questionModal{question: q, level: level, selected: quest.NoSelection}
}

func (qm *questionModal) up() {
	if qm.selected > 0 {
		qm.selected--
	}
}

func (qm *questionModal) down() {
	if qm.selected < len(qm.question.Options)-1 {
		qm.selected++
	}
}

func (qm *questionModal) choose(i int) {
	if i >= 0 && i < len(qm.question.Options) {
		qm.selected = i
	}
}

// view renders the modal box.
func (qm questionModal) view(theme Theme, width int) string {
	boxWidth := min(max(width-8, 30), 72)
	inner := boxWidth - 6

	var b strings.Builder
	b.WriteString(theme.OverlayTitle.Render(fmt.Sprintf("Level %d Challenge", qm.level)))
	b.WriteString("\n\n")
	b.WriteString(theme.OverlayText.Width(inner).Render(qm.question.Prompt))
	b.WriteString("\n\n")

	for i, opt := range qm.question.Options {
		line := fmt.Sprintf(" %c. %s ", 'A'+i, opt)
		if i == qm.selected {
			b.WriteString(theme.OptionActive.Render(line))
		} else {
			b.WriteString(theme.OptionNormal.Render(line))
		}
		b.WriteString("\n")
	}

	if qm.confirmSkip {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render("Skip this question? No points will be gained or lost. (y/n)"))
	}

	return theme.OverlayBorder.Width(boxWidth).Render(b.String())
}

// placeCentered centers a rendered block in the given area.
func placeCentered(width, height int, block string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
