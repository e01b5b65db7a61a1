package quest

import (
	"fmt"

	"github.com/vovakirdan/learnquest/internal/core"
)

// Event is a discrete input delivered to the engine. The set is closed.
type Event interface {
	isEvent()
}

type (
	// StartEvent begins (or restarts) a game.
	StartEvent struct{}
	// MoveEvent steps the avatar.
	MoveEvent struct{ Dir core.Direction }
	// AskEvent opens a question.
	AskEvent struct{}
	// AnswerEvent submits the selected option, NoSelection if none.
	AnswerEvent struct{ Index int }
	// SkipEvent closes the open question unscored.
	SkipEvent struct{}
	// TickEvent advances the countdown by one unit.
	TickEvent struct{}
)

func (StartEvent) isEvent()  {}
func (MoveEvent) isEvent()   {}
func (AskEvent) isEvent()    {}
func (AnswerEvent) isEvent() {}
func (SkipEvent) isEvent()   {}
func (TickEvent) isEvent()   {}

// Response carries what an event produced, where relevant.
type Response struct {
	Collision CollisionResult
	Question  *Question
	Answer    *AnswerResult
}

// Dispatch applies ev. Events must be dispatched one at a time from the
// loop that owns the engine.
func (e *Engine) Dispatch(ev Event) (Response, error) {
	switch ev := ev.(type) {
	case StartEvent:
		e.Start()
		return Response{}, nil
	case MoveEvent:
		res, err := e.Move(ev.Dir)
		return Response{Collision: res}, err
	case AskEvent:
		q, err := e.AskQuestion()
		if err != nil {
			return Response{}, err
		}
		return Response{Question: &q}, nil
	case AnswerEvent:
		res, err := e.Answer(ev.Index)
		if err != nil {
			return Response{}, err
		}
		return Response{Answer: &res}, nil
	case SkipEvent:
		return Response{}, e.SkipQuestion()
	case TickEvent:
		e.Tick()
		return Response{}, nil
	default:
		return Response{}, fmt.Errorf("quest: unknown event %T", ev)
	}
}
