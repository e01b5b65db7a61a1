package quest

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/learnquest/internal/config"
	"github.com/vovakirdan/learnquest/internal/core"
)

// Engine owns one Learning Quest game. It is not safe for concurrent use:
// every call must come from the single event loop that also delivers
// scheduler callbacks.
type Engine struct {
	cfg       config.QuestConfig
	rules     config.LevelRules
	bounds    core.Bounds
	start     core.Vec
	rng       *rand.Rand
	placer    *Placer
	detector  Detector
	bank      *Bank
	countdown *Countdown
	observer  Observer
	recorder  Recorder
	now       func() time.Time
	newID     func() string
	sched     Scheduler

	phase         Phase
	sessionID     string
	score         int
	level         int
	timeRemaining int
	avatar        core.Vec
	achievements  []string
	field         Field
	question      *Question
	recorded      bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for placement and question picks.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithScheduler sets the scheduler driving the countdown. Without one the
// countdown never fires on its own.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithObserver sets the render / game-over collaborator.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithRecorder sets the score persistence collaborator.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithClock sets the time source for score timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithSessionIDs sets the session id generator.
func WithSessionIDs(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// New creates an idle engine. Call Start to begin a game.
func New(cfg config.QuestConfig, questions config.QuestionBankConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		rules:    config.NewLevelRules(cfg),
		bounds:   core.Bounds{MinX: cfg.Field.MinX, MaxX: cfg.Field.MaxX, MinY: cfg.Field.MinY, MaxY: cfg.Field.MaxY},
		start:    core.V(cfg.Avatar.StartX, cfg.Avatar.StartY),
		detector: NewDetector(cfg),
		observer: NopObserver{},
		now:      time.Now,
		newID:    uuid.NewString,
		phase:    PhaseIdle,
		level:    1,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
	e.placer = NewPlacer(cfg, e.rng)
	e.bank = NewBank(questions, e.rng)
	e.countdown = NewCountdown(e.sched, time.Duration(cfg.Timer.TickMillis)*time.Millisecond)
	e.avatar = e.start
	return e
}

// Start resets every piece of state and begins a new game at level 1. Any
// pending tick of the previous game is cancelled.
func (e *Engine) Start() {
	e.countdown.Stop()

	e.sessionID = e.newID()
	e.score = 0
	e.level = 1
	e.timeRemaining = e.cfg.Timer.InitialSeconds
	e.avatar = e.start
	e.achievements = nil
	e.field = Field{}
	e.question = nil
	e.recorded = false
	e.phase = PhaseActive

	// Obstacles first so collectibles can keep clear of them
	e.regenerate()
	e.countdown.Arm(e.Tick)
	e.emit()
}

// Move steps the avatar one step in dir, clamped to the field, then applies
// whatever it ran into.
func (e *Engine) Move(dir core.Direction) (CollisionResult, error) {
	if e.phase != PhaseActive {
		return CollisionResult{}, ErrNotActive
	}
	if e.question != nil {
		return CollisionResult{}, ErrQuestionOpen
	}

	dx, dy := dir.Delta()
	step := e.cfg.Avatar.Step
	e.avatar = e.bounds.Clamp(e.avatar.Add(dx*step, dy*step))

	res := e.detector.Check(e.avatar, &e.field)
	if res.Obstacle != nil {
		e.applyObstacleHit()
	}
	if res.Collectible != nil {
		e.applyCollectibleHit()
	}
	e.emit()
	return res, nil
}

// ApplyObstacleHit deducts the obstacle penalty, flooring the score at zero.
func (e *Engine) ApplyObstacleHit() {
	if e.phase != PhaseActive {
		return
	}
	e.applyObstacleHit()
	e.emit()
}

func (e *Engine) applyObstacleHit() {
	e.addScore(-e.cfg.Scoring.ObstaclePenalty)
}

// ApplyCollectibleHit awards the collectible bonus and respawns exactly one
// replacement collectible, if a free spot is found.
func (e *Engine) ApplyCollectibleHit() {
	if e.phase != PhaseActive {
		return
	}
	e.applyCollectibleHit()
	e.emit()
}

func (e *Engine) applyCollectibleHit() {
	e.addScore(e.cfg.Scoring.Collectible)
	if c, ok := e.placer.PlaceOne(e.field.Obstacles, e.avatar); ok {
		e.field.Collectibles = append(e.field.Collectibles, c)
	}
}

// ApplyCorrectAnswer awards the answer bonus and advances one level when the
// level goal is reached. It reports whether a level change (or victory)
// happened.
func (e *Engine) ApplyCorrectAnswer() bool {
	if e.phase != PhaseActive {
		return false
	}
	advanced := e.applyCorrectAnswer()
	e.emit()
	return advanced
}

func (e *Engine) applyCorrectAnswer() bool {
	e.addScore(e.cfg.Scoring.Correct)
	if e.score >= e.rules.Goal(e.level) {
		e.AdvanceLevel()
		return true
	}
	return false
}

// ApplyIncorrectAnswer deducts the wrong-answer penalty, flooring at zero.
func (e *Engine) ApplyIncorrectAnswer() {
	if e.phase != PhaseActive {
		return
	}
	e.addScore(-e.cfg.Scoring.IncorrectPenalty)
	e.emit()
}

// AdvanceLevel moves to the next level with bonus time and a fresh field, or
// ends the game in victory when already on the final level.
func (e *Engine) AdvanceLevel() {
	if e.phase != PhaseActive {
		return
	}
	if e.rules.IsFinal(e.level) {
		e.finish(PhaseVictory)
		return
	}

	e.phase = PhaseAdvancing
	e.level++
	e.timeRemaining += e.cfg.Timer.LevelBonus
	e.regenerate()
	e.addAchievement(fmt.Sprintf("Reached Level %d", e.level))
	e.phase = PhaseActive
	e.emit()
}

// Tick decrements the countdown by one unit. Reaching zero ends the game;
// otherwise the next tick is armed.
func (e *Engine) Tick() {
	if e.phase != PhaseActive {
		return
	}
	e.timeRemaining--
	if e.timeRemaining <= 0 {
		e.timeRemaining = 0
		e.finish(PhaseTimeExpired)
		return
	}
	e.countdown.Arm(e.Tick)
	e.emit()
}

// AskQuestion opens a random question for the current level. Movement is
// rejected until it is answered or skipped.
func (e *Engine) AskQuestion() (Question, error) {
	if e.phase != PhaseActive {
		return Question{}, ErrNotActive
	}
	if e.question != nil {
		return *e.question, ErrQuestionOpen
	}

	q, err := e.bank.PickRandom(e.level)
	if err != nil {
		return Question{}, err
	}
	e.question = &q
	e.emit()
	return q, nil
}

// AnswerResult describes a scored answer.
type AnswerResult struct {
	Correct       bool
	CorrectOption string
	Advanced      bool
	Phase         Phase
	Score         int
	Level         int
}

// Answer scores the open question. A missing selection is rejected with
// ErrNoSelection and the question stays open.
func (e *Engine) Answer(index int) (AnswerResult, error) {
	if e.phase != PhaseActive {
		return AnswerResult{}, ErrNotActive
	}
	if e.question == nil {
		return AnswerResult{}, ErrNoQuestion
	}
	q := *e.question
	if err := ValidateSelection(q, index); err != nil {
		return AnswerResult{}, err
	}
	e.question = nil

	res := AnswerResult{
		Correct:       Evaluate(q, index),
		CorrectOption: q.CorrectOption(),
	}
	if res.Correct {
		res.Advanced = e.applyCorrectAnswer()
	} else {
		e.addScore(-e.cfg.Scoring.IncorrectPenalty)
	}
	res.Phase = e.phase
	res.Score = e.score
	res.Level = e.level
	e.emit()
	return res, nil
}

// SkipQuestion closes the open question without changing the score.
func (e *Engine) SkipQuestion() error {
	if e.phase != PhaseActive {
		return ErrNotActive
	}
	if e.question == nil {
		return ErrNoQuestion
	}
	e.question = nil
	e.emit()
	return nil
}

// Record persists the finished game under the cleaned name (see CleanName).
// It can succeed once per game; a failed persist may be retried.
func (e *Engine) Record(name string) (ScoreRecord, error) {
	if !e.phase.Terminal() {
		return ScoreRecord{}, ErrNotFinished
	}
	if e.recorded {
		return ScoreRecord{}, ErrAlreadyRecorded
	}
	name = CleanName(name)
	if name == "" {
		return ScoreRecord{}, ErrEmptyName
	}

	rec := ScoreRecord{
		Name:      name,
		Score:     e.score,
		Level:     e.level,
		Timestamp: e.now().Format(TimestampLayout),
		SessionID: e.sessionID,
	}
	if e.recorder != nil {
		if err := e.recorder.Persist(rec); err != nil {
			return rec, fmt.Errorf("quest: persist score: %w", err)
		}
	}
	e.recorded = true
	return rec, nil
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		SessionID:     e.sessionID,
		Phase:         e.phase,
		Active:        e.phase == PhaseActive,
		Score:         e.score,
		Level:         e.level,
		Goal:          e.rules.Goal(e.level),
		TimeRemaining: e.timeRemaining,
		Avatar:        e.avatar,
		Achievements:  slices.Clone(e.achievements),
		Field:         e.field.Clone(),
	}
	if e.question != nil {
		q := *e.question
		s.Question = &q
	}
	return s
}

// Rules returns the level rules in use.
func (e *Engine) Rules() config.LevelRules {
	return e.rules
}

// TimerArmed reports whether a countdown tick is pending.
func (e *Engine) TimerArmed() bool {
	return e.countdown.Armed()
}

// finish enters a terminal phase: the countdown is cancelled, the open
// question discarded, and observers are asked to persist the result.
func (e *Engine) finish(phase Phase) {
	e.countdown.Stop()
	e.phase = phase
	e.question = nil
	e.emit()
	e.observer.GameOver(Outcome{
		SessionID:     e.sessionID,
		Phase:         phase,
		Score:         e.score,
		Level:         e.level,
		TimeRemaining: e.timeRemaining,
	})
}

func (e *Engine) regenerate() {
	e.field.Obstacles = e.placer.PlaceObstacles(e.level)
	e.field.Collectibles = e.placer.PlaceCollectibles(e.field.Obstacles)
}

func (e *Engine) addScore(delta int) {
	e.score = max(0, e.score+delta)
}

func (e *Engine) addAchievement(a string) {
	if !slices.Contains(e.achievements, a) {
		e.achievements = append(e.achievements, a)
	}
}

func (e *Engine) emit() {
	e.observer.Render(e.Snapshot())
}
