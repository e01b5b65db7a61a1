package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/learnquest/internal/quest"
	"github.com/vovakirdan/learnquest/internal/storage"
)

// Scoreboard layout constants
const (
	scoreboardChrome = 10 // title, borders, help and margins
	nameColumnMax    = 20
)

// scoreboard is the high scores screen. It is embedded in Model rather than
// run as its own program.
type scoreboard struct {
	table  table.Model
	scores []quest.ScoreRecord
	limit  int
	err    error
	width  int
	height int
}

func newScoreboard(limit, width, height int) scoreboard {
	sb := scoreboard{limit: limit, width: width, height: height}
	sb.table = sb.createTable()
	return sb
}

// createTable creates a new table with appropriate columns.
func (sb *scoreboard) createTable() table.Model {
	nameWidth := nameColumnMax
	if free := sb.width - 4 - (6 + 7 + 7 + 20); free < nameWidth {
		nameWidth = max(free, 8)
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: nameWidth},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 7},
		{Title: "Date", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(sb.height-scoreboardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the leaderboard from store. A nil store shows the empty board.
func (sb *scoreboard) load(store storage.Backend) {
	sb.err = nil
	sb.scores = nil

	if store != nil {
		sb.scores, sb.err = store.Top(sb.limit)
	}
	sb.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (sb *scoreboard) updateTableRows() {
	rows := make([]table.Row, len(sb.scores))
	for i, s := range sb.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Name,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.Timestamp,
		}
	}
	sb.table.SetRows(rows)
	sb.table.GotoTop()
}

func (sb *scoreboard) resize(width, height int) {
	sb.width = width
	sb.height = height
	sb.table = sb.createTable()
	sb.updateTableRows()
}

// update forwards scrolling keys to the table.
func (sb *scoreboard) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	sb.table, cmd = sb.table.Update(msg)
	return cmd
}

// view renders the scoreboard body.
func (sb scoreboard) view(theme Theme) string {
	var b strings.Builder

	b.WriteString(centerText(theme.OverlayTitle.Render("HIGH SCORES"), sb.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(lipgloss.PlaceHorizontal(sb.width, lipgloss.Center, tableStyle.Render(sb.content(theme))))
	return b.String()
}

// content renders the table or an empty / error message.
func (sb scoreboard) content(theme Theme) string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case sb.err != nil:
		return theme.Warning.Padding(2, 4).Render("Could not load high scores:\n" + sb.err.Error())
	case len(sb.scores) == 0:
		return emptyStyle.Render("No high scores found yet!\nPlay the game to set the first record!")
	}
	return sb.table.View()
}
