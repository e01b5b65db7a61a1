package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/learnquest/internal/config"
	"github.com/vovakirdan/learnquest/internal/core"
	"github.com/vovakirdan/learnquest/internal/quest"
	"github.com/vovakirdan/learnquest/internal/storage"
)

// mode is the screen currently owning the keyboard.
type mode int

const (
	modeMenu mode = iota
	modePlaying
	modeQuestion
	modeNameEntry
	modeScores
	modeHelp
)

// Rows around the field
const (
	hudRows      = 2
	footerRows   = 2
	minFieldRows = 8
	minFieldCols = 30
)

// Options configures a session.
type Options struct {
	Config    config.QuestConfig
	Questions config.QuestionBankConfig
	Store     storage.Backend // nil disables the leaderboard
	Logger    *log.Logger
	Runtime   core.RuntimeConfig
}

// sink is the engine's observer. Notifications arrive synchronously while
// Update dispatches an event, so Update reads them right after the call.
type sink struct {
	snap    quest.Snapshot
	outcome *quest.Outcome
}

func (s *sink) Render(snap quest.Snapshot) { s.snap = snap }
func (s *sink) GameOver(o quest.Outcome)   { s.outcome = &o }

func (s *sink) takeOutcome() *quest.Outcome {
	o := s.outcome
	s.outcome = nil
	return o
}

// Model is the Bubble Tea model of a Learning Quest session.
type Model struct {
	engine *quest.Engine
	sink   *sink
	store  storage.Backend
	logger *log.Logger
	cfg    config.QuestConfig
	rules  config.LevelRules
	keys   KeyMap
	help   help.Model
	theme  Theme
	screen *core.Screen

	mode     mode
	back     mode // where an overlay returns to
	menu     menu
	modal    questionModal
	name     textinput.Model
	board    scoreboard
	status   string
	warn     bool
	width    int
	height   int
	quitting bool
}

// NewModel creates the session model. sched delivers countdown ticks; it must
// run callbacks on the program's event loop.
func NewModel(opts Options, sched quest.Scheduler) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	if opts.Runtime.Seed != 0 {
		cfg.Seed = opts.Runtime.Seed
	}

	sk := &sink{}
	engineOpts := []quest.Option{
		quest.WithScheduler(sched),
		quest.WithObserver(sk),
	}
	if opts.Store != nil {
		engineOpts = append(engineOpts, quest.WithRecorder(opts.Store))
	}

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 32
	name.Width = 30

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	engine := quest.New(cfg, opts.Questions, engineOpts...)

	return Model{
		engine: engine,
		sink:   sk,
		store:  opts.Store,
		logger: logger,
		cfg:    cfg,
		rules:  engine.Rules(),
		keys:   DefaultKeyMap(),
		help:   h,
		theme:  DefaultTheme(),
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		mode:   modeMenu,
		name:   name,
		board:  newScoreboard(cfg.Scores.DisplayLimit, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Learning Quest")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case timerFiredMsg:
		msg.fn()
		m.afterEngine()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		return m.handleKey(msg)
	}

	if m.mode == modeNameEntry {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey routes a key press to the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeMenu:
		return m.handleMenuKey(msg)
	case modePlaying:
		return m.handlePlayingKey(msg)
	case modeQuestion:
		m.handleQuestionKey(msg)
		return m, nil
	case modeNameEntry:
		return m.handleNameKey(msg)
	case modeScores, modeHelp:
		return m.handleOverlayKey(msg)
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionUp:
		m.menu.up()
	case core.ActionDown:
		m.menu.down()
	case core.ActionStart:
		m.startGame()
	case core.ActionScores:
		m.openOverlay(modeScores)
	case core.ActionHelp:
		m.openOverlay(modeHelp)
	case core.ActionConfirm, core.ActionAsk:
		switch m.menu.selected() {
		case menuStart:
			m.startGame()
		case menuScores:
			m.openOverlay(modeScores)
		case menuHelp:
			m.openOverlay(modeHelp)
		case menuQuit:
			return m.quit()
		}
	}
	return m, nil
}

func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		return m.quit()
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		resp, err := m.engine.Dispatch(quest.MoveEvent{Dir: action.Direction()})
		if err == nil {
			m.describeCollision(resp.Collision)
		}
	case core.ActionAsk:
		m.askQuestion()
	case core.ActionStart:
		m.startGame()
	case core.ActionScores:
		m.openOverlay(modeScores)
	case core.ActionHelp:
		m.openOverlay(modeHelp)
	}
	m.afterEngine()
	return m, nil
}

func (m *Model) handleQuestionKey(msg tea.KeyMsg) {
	if m.modal.confirmSkip {
		switch {
		case key.Matches(msg, m.keys.Yes):
			if _, err := m.engine.Dispatch(quest.SkipEvent{}); err != nil {
				m.logger.Warn("skip failed", "error", err)
			}
			m.mode = modePlaying
			m.setStatus("Question skipped. No points gained or lost.", false)
		case key.Matches(msg, m.keys.No):
			m.modal.confirmSkip = false
		}
		return
	}

	if i := m.keys.OptionIndex(msg); i >= 0 {
		m.modal.choose(i)
		return
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.modal.up()
	case key.Matches(msg, m.keys.Down):
		m.modal.down()
	case key.Matches(msg, m.keys.Confirm):
		m.submitAnswer()
	case key.Matches(msg, m.keys.Skip):
		m.modal.confirmSkip = true
	}
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.saveScore()
		return m, nil
	case tea.KeyEsc:
		m.name.Blur()
		m.mode = modeMenu
		m.setStatus("Score not saved.", false)
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Back):
		m.mode = m.back
		return m, nil
	}

	if m.mode == modeScores {
		return m, m.board.update(msg)
	}
	return m, nil
}

func (m *Model) startGame() {
	m.engine.Dispatch(quest.StartEvent{})
	m.sink.takeOutcome()
	m.mode = modePlaying
	m.setStatus("Good luck! Collect coins, dodge blocks and answer questions.", false)
	m.logger.Info("session started", "session", m.sink.snap.SessionID)
}

func (m *Model) askQuestion() {
	resp, err := m.engine.Dispatch(quest.AskEvent{})
	if err != nil {
		m.logger.Warn("cannot open question", "session", m.sink.snap.SessionID, "error", err)
		m.setStatus("No question available right now.", true)
		return
	}
	m.modal = newQuestionModal(*resp.Question, m.sink.snap.Level)
	m.mode = modeQuestion
	m.setStatus("Pick an answer and press enter.", false)
}

func (m *Model) submitAnswer() {
	resp, err := m.engine.Dispatch(quest.AnswerEvent{Index: m.modal.selected})
	switch {
	case errors.Is(err, quest.ErrNoSelection):
		m.setStatus("Please select an answer!", true)
		return
	case err != nil:
		m.logger.Warn("answer rejected", "session", m.sink.snap.SessionID, "error", err)
		m.mode = modePlaying
		return
	}

	res := resp.Answer
	m.mode = modePlaying
	switch {
	case !res.Correct:
		m.setStatus(fmt.Sprintf("Sorry, that's wrong. The correct answer was: %s (-%d points)",
			res.CorrectOption, m.cfg.Scoring.IncorrectPenalty), true)
	case res.Advanced && res.Phase == quest.PhaseActive:
		m.logger.Info("level up", "session", m.sink.snap.SessionID, "level", res.Level, "score", res.Score)
		m.setStatus(fmt.Sprintf("Level Up! You've advanced to Level %d! New goal: %d points, +%d seconds!",
			res.Level, m.rules.Goal(res.Level), m.cfg.Timer.LevelBonus), false)
	default:
		m.setStatus(fmt.Sprintf("Correct! That's right! +%d points. Great job!", m.cfg.Scoring.Correct), false)
	}
	m.afterEngine()
}

func (m *Model) describeCollision(res quest.CollisionResult) {
	switch {
	case res.Obstacle != nil && res.Collectible != nil:
		m.setStatus(fmt.Sprintf("Hit an obstacle (-%d) but grabbed a coin (+%d)!",
			m.cfg.Scoring.ObstaclePenalty, m.cfg.Scoring.Collectible), true)
	case res.Obstacle != nil:
		m.setStatus(fmt.Sprintf("Oops! You hit an obstacle! -%d points.", m.cfg.Scoring.ObstaclePenalty), true)
	case res.Collectible != nil:
		m.setStatus(fmt.Sprintf("Coin collected! +%d points.", m.cfg.Scoring.Collectible), false)
	}
}

// afterEngine reacts to a game that ended during the last dispatch.
func (m *Model) afterEngine() {
	o := m.sink.takeOutcome()
	if o == nil {
		return
	}
	m.logger.Info("game over", "session", o.SessionID, "result", o.Phase, "score", o.Score, "level", o.Level)

	if o.Phase == quest.PhaseVictory {
		m.setStatus(fmt.Sprintf("VICTORY! You've completed all levels! Final score: %d, %d seconds to spare.",
			o.Score, o.TimeRemaining), false)
	} else {
		m.setStatus(fmt.Sprintf("Time's up! Final score: %d (level %d).", o.Score, o.Level), false)
	}

	if m.store == nil {
		m.mode = modeMenu
		m.status += " High scores are unavailable."
		return
	}
	m.mode = modeNameEntry
	m.name.Reset()
	m.name.Focus()
}

func (m *Model) saveScore() {
	rec, err := m.engine.Record(m.name.Value())
	switch {
	case errors.Is(err, quest.ErrEmptyName):
		m.name.Blur()
		m.mode = modeMenu
		m.setStatus("Score not saved.", false)
	case err != nil:
		// Stay on the prompt so the player can retry
		m.logger.Warn("could not save score", "session", rec.SessionID, "error", err)
		m.setStatus(fmt.Sprintf("Could not save score: %v. Press enter to retry or esc to skip.", err), true)
	default:
		m.logger.Info("score saved", "session", rec.SessionID, "name", rec.Name, "score", rec.Score, "level", rec.Level)
		m.name.Blur()
		m.setStatus(fmt.Sprintf("Your score has been saved! Player: %s  Score: %d  Level: %d",
			rec.Name, rec.Score, rec.Level), false)
		m.mode = modeMenu
		m.openOverlay(modeScores)
	}
}

func (m *Model) openOverlay(to mode) {
	if m.mode != modeScores && m.mode != modeHelp {
		m.back = m.mode
	}
	if to == modeScores {
		m.board.load(m.store)
		if m.board.err != nil {
			m.logger.Warn("could not load high scores", "error", m.board.err)
		}
	}
	m.mode = to
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.board.resize(width, height)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) setStatus(text string, warn bool) {
	m.status = text
	m.warn = warn
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.mode {
	case modeMenu:
		body = m.menu.view(m.theme, m.width, welcomeLines(m.rules, m.cfg.Scoring))
	case modeScores:
		body = m.board.view(m.theme)
	case modeHelp:
		box := m.theme.OverlayBorder.Render(
			m.theme.OverlayTitle.Render("How to Play Learning Quest") + "\n\n" +
				m.theme.OverlayText.Render(helpText(m.cfg)))
		body = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
	default:
		body = m.gameView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusView(), m.helpView())
}

// gameView renders the HUD and the field, or the modal covering the field.
func (m Model) gameView() string {
	snap := m.sink.snap
	rows := m.height - hudRows - footerRows
	if rows < minFieldRows || m.width < minFieldCols {
		return m.theme.Warning.Render(fmt.Sprintf("Terminal too small: need at least %dx%d.",
			minFieldCols, minFieldRows+hudRows+footerRows))
	}

	var field string
	switch m.mode {
	case modeQuestion:
		field = placeCentered(m.width, rows, m.modal.view(m.theme, m.width))
	case modeNameEntry:
		field = placeCentered(m.width, rows, m.nameView(snap))
	default:
		m.screen.Resize(m.width, rows)
		drawField(m.screen, newFieldLayout(m.cfg.Field, m.width, rows), snap)
		field = RenderScreen(m.screen)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.hudView(snap), field)
}

// hudView renders the two header lines: counters, then goal progress.
func (m Model) hudView(snap quest.Snapshot) string {
	sep := m.theme.HUDSeparator.Render("  │  ")
	label := m.theme.HUDLabel.Render
	value := m.theme.HUDValue.Render

	timeStyle := styleFor(timeColor(snap.TimeRemaining)).Bold(true)
	counters := label("Score: ") + value(fmt.Sprintf("%d", snap.Score)) + sep +
		label("Level: ") + value(fmt.Sprintf("%d/%d", snap.Level, m.rules.Max())) + sep +
		label("Time: ") + timeStyle.Render(fmt.Sprintf("%d", snap.TimeRemaining))

	goal := progressBar(m.theme, 20, m.rules.Progress(snap.Score, snap.Level)) + " " +
		m.theme.Goal.Render(m.rules.GoalText(snap.Level))
	if len(snap.Achievements) > 0 {
		goal += "  " + m.theme.Achievement.Render("★ "+strings.Join(snap.Achievements, " ★ "))
	}

	return counters + "\n" + goal
}

// nameView renders the end-of-game name prompt.
func (m Model) nameView(snap quest.Snapshot) string {
	title := "GAME OVER"
	if snap.Phase == quest.PhaseVictory {
		title = "VICTORY!"
	}

	var b strings.Builder
	b.WriteString(m.theme.OverlayTitle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.theme.OverlayText.Render(fmt.Sprintf("Final score: %d   Level: %d", snap.Score, snap.Level)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.OverlayText.Render("Enter your name for the high score:"))
	b.WriteString("\n")
	b.WriteString(m.name.View())
	return m.theme.OverlayBorder.Render(b.String())
}

func (m Model) statusView() string {
	if m.warn {
		return m.theme.Warning.Render(m.status)
	}
	return m.theme.Status.Render(m.status)
}

func (m Model) helpView() string {
	var keys bindings
	switch m.mode {
	case modeMenu:
		keys = m.keys.menuHelp()
	case modePlaying:
		keys = m.keys.playingHelp()
	case modeQuestion:
		keys = m.keys.questionHelp()
		if m.modal.confirmSkip {
			keys = m.keys.confirmSkipHelp()
		}
	case modeNameEntry:
		keys = m.keys.nameHelp()
	default:
		keys = m.keys.overlayHelp()
	}
	return m.theme.Help.Render(m.help.View(keys))
}

// Run starts the Bubble Tea program for one interactive session.
func Run(opts Options) error {
	sched := &programScheduler{}
	model := NewModel(opts, sched)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	sched.attach(p)

	_, err := p.Run()
	return err
}
