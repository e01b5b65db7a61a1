// Package tui provides the Bubble Tea shell for Learning Quest.
// It owns the terminal, maps keys to engine events and draws snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerFiredMsg carries a scheduled engine callback into Update, so the
// engine only ever runs on the program's event loop.
type timerFiredMsg struct {
	fn func()
}

// programScheduler implements quest.Scheduler on top of a running program.
// The timer goroutine only posts a message; the callback runs in Update.
type programScheduler struct {
	send func(tea.Msg)
}

// attach wires the scheduler to the program. It must be called before the
// program starts.
func (s *programScheduler) attach(p *tea.Program) {
	s.send = p.Send
}

// After implements quest.Scheduler.
func (s *programScheduler) After(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, func() {
		if s.send != nil {
			s.send(timerFiredMsg{fn: fn})
		}
	})
	return func() { t.Stop() }
}
