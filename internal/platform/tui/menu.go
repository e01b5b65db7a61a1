package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/learnquest/internal/config"
)

// menuItem is an entry of the welcome menu.
type menuItem int

const (
	menuStart menuItem = iota
	menuScores
	menuHelp
	menuQuit
)

var menuItems = []menuItem{menuStart, menuScores, menuHelp, menuQuit}

func (i menuItem) String() string {
	switch i {
	case menuStart:
		return "Start Game"
	case menuScores:
		return "High Scores"
	case menuHelp:
		return "Help"
	case menuQuit:
		return "Quit"
	default:
		return ""
	}
}

// menu is the welcome screen with its cursor.
type menu struct {
	cursor int
}

func (m *menu) up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *menu) down() {
	if m.cursor < len(menuItems)-1 {
		m.cursor++
	}
}

func (m menu) selected() menuItem {
	return menuItems[m.cursor]
}

// welcomeLines returns the instructions shown under the title.
func welcomeLines(rules config.LevelRules, scoring config.ScoringConfig) []string {
	lines := []string{
		"Welcome to your Python learning adventure!",
		"",
		"How to Play:",
		"• Use the arrow keys to move your character",
		fmt.Sprintf("• Collect yellow coins for +%d points", scoring.Collectible),
		fmt.Sprintf("• Avoid red blocks (they cost you %d points)", scoring.ObstaclePenalty),
		fmt.Sprintf("• Answer questions to earn +%d points", scoring.Correct),
		"• Reach the target score to advance levels",
		"",
		"Level Goals:",
	}
	for level := 1; level <= rules.Max(); level++ {
		if rules.IsFinal(level) {
			lines = append(lines, fmt.Sprintf("Level %d: Reach %d+ points to win!", level, rules.Goal(level)))
		} else {
			lines = append(lines, fmt.Sprintf("Level %d: Reach %d points to advance", level, rules.Goal(level)))
		}
	}
	return lines
}

// view renders the welcome screen.
func (m menu) view(theme Theme, width int, instructions []string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render("L E A R N I N G   Q U E S T"), width))
	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuSubtitle.Render("Code in Place Final Project"), width))
	b.WriteString("\n\n")

	for _, line := range instructions {
		b.WriteString(centerText(theme.MenuDescription.Render(line), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range menuItems {
		line := "  " + item.String() + "  "
		if i == m.cursor {
			line = theme.MenuItemActive.Render("> " + item.String() + " <")
		} else {
			line = theme.MenuItemNormal.Render(line)
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	return b.String()
}
