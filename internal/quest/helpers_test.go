package quest

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/learnquest/internal/config"
)

// manualScheduler queues callbacks until the test fires them.
type manualScheduler struct {
	tasks []*scheduledTask
}

type scheduledTask struct {
	d         time.Duration
	fn        func()
	cancelled bool
}

func (s *manualScheduler) After(d time.Duration, fn func()) func() {
	task := &scheduledTask{d: d, fn: fn}
	s.tasks = append(s.tasks, task)
	return func() { task.cancelled = true }
}

// fire runs the oldest live task. It reports false if nothing was pending.
func (s *manualScheduler) fire() bool {
	for len(s.tasks) > 0 {
		task := s.tasks[0]
		s.tasks = s.tasks[1:]
		if !task.cancelled {
			task.fn()
			return true
		}
	}
	return false
}

func (s *manualScheduler) pending() int {
	n := 0
	for _, task := range s.tasks {
		if !task.cancelled {
			n++
		}
	}
	return n
}

// last returns the most recently scheduled task, cancelled or not.
func (s *manualScheduler) last() *scheduledTask {
	if len(s.tasks) == 0 {
		return nil
	}
	return s.tasks[len(s.tasks)-1]
}

type recordingObserver struct {
	renders  int
	last     Snapshot
	outcomes []Outcome
}

func (o *recordingObserver) Render(s Snapshot) {
	o.renders++
	o.last = s
}

func (o *recordingObserver) GameOver(out Outcome) {
	o.outcomes = append(o.outcomes, out)
}

type memRecorder struct {
	records []ScoreRecord
	fail    error
}

func (r *memRecorder) Persist(rec ScoreRecord) error {
	if r.fail != nil {
		return r.fail
	}
	r.records = append(r.records, rec)
	return nil
}

var errDiskFull = errors.New("disk full")

func testBank() config.QuestionBankConfig {
	return config.QuestionBankConfig{
		Levels: map[int][]config.QuestionConfig{
			1: {
				{Prompt: "What is 1+1?", Options: []string{"1", "2", "3", "4"}, Answer: 1},
			},
			2: {
				{Prompt: "What is 2+2?", Options: []string{"4", "5", "6", "7"}, Answer: 0},
			},
		},
	}
}

type testEngine struct {
	*Engine
	sched    *manualScheduler
	observer *recordingObserver
	recorder *memRecorder
}

func newTestEngine(t *testing.T, seed int64) testEngine {
	t.Helper()
	te := testEngine{
		sched:    &manualScheduler{},
		observer: &recordingObserver{},
		recorder: &memRecorder{},
	}
	ids := 0
	te.Engine = New(config.DefaultQuestConfig(), testBank(),
		WithRand(rand.New(rand.NewSource(seed))),
		WithScheduler(te.sched),
		WithObserver(te.observer),
		WithRecorder(te.recorder),
		WithClock(func() time.Time { return time.Date(2024, 5, 17, 14, 3, 9, 0, time.UTC) }),
		WithSessionIDs(func() string {
			ids++
			return "session-" + string(rune('0'+ids))
		}),
	)
	return te
}
