package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/learnquest/internal/core"
)

// KeyMap holds every key binding of the shell. Bindings are shared between
// screens; each screen picks the subset it shows in its help bar.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Start   key.Binding
	Ask     key.Binding
	Confirm key.Binding
	Skip    key.Binding
	Yes     key.Binding
	No      key.Binding
	Scores  key.Binding
	Help    key.Binding
	Back    key.Binding
	Quit    key.Binding
	Options [4]key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Ask: key.NewBinding(
			key.WithKeys(" ", "e"),
			key.WithHelp("space/e", "answer question"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Skip: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x/esc", "skip"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "no"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "high scores"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Options: [4]key.Binding{
			key.NewBinding(key.WithKeys("1", "a"), key.WithHelp("1-4", "choose")),
			key.NewBinding(key.WithKeys("2", "b")),
			key.NewBinding(key.WithKeys("3", "c")),
			key.NewBinding(key.WithKeys("4", "d")),
		},
	}
}

// Action translates a key message to a semantic action for the menu and
// playing screens. Modal screens match bindings directly.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Ask):
		return core.ActionAsk
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Scores):
		return core.ActionScores
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// OptionIndex returns the answer option a key selects, or -1.
func (k KeyMap) OptionIndex(msg tea.KeyMsg) int {
	for i, b := range k.Options {
		if key.Matches(msg, b) {
			return i
		}
	}
	return -1
}

// bindings is an ad-hoc help.KeyMap for one screen.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding {
	return b
}

func (b bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

func (k KeyMap) menuHelp() bindings {
	return bindings{k.Up, k.Down, k.Confirm, k.Start, k.Scores, k.Help, k.Quit}
}

func (k KeyMap) playingHelp() bindings {
	return bindings{k.Up, k.Down, k.Left, k.Right, k.Ask, k.Scores, k.Help, k.Quit}
}

func (k KeyMap) questionHelp() bindings {
	return bindings{k.Options[0], k.Up, k.Down, k.Confirm, k.Skip}
}

func (k KeyMap) confirmSkipHelp() bindings {
	return bindings{k.Yes, k.No}
}

func (k KeyMap) nameHelp() bindings {
	return bindings{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save score")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "don't save")),
	}
}

func (k KeyMap) overlayHelp() bindings {
	return bindings{k.Up, k.Down, k.Back, k.Quit}
}
