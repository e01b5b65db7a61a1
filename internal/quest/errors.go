package quest

import "errors"

var (
	// ErrNotActive is returned for input that arrives outside the Active phase.
	ErrNotActive = errors.New("quest: game is not active")
	// ErrQuestionOpen is returned for movement (or a second question) while a
	// question is waiting for an answer.
	ErrQuestionOpen = errors.New("quest: a question is open")
	// ErrNoQuestion is returned when answering or skipping with no open question.
	ErrNoQuestion = errors.New("quest: no question is open")
	// ErrNoSelection is returned when an answer is submitted without choosing
	// an option. The question stays open.
	ErrNoSelection = errors.New("quest: no answer selected")
	// ErrInvalidSelection is returned for an option index out of range.
	ErrInvalidSelection = errors.New("quest: answer index out of range")
	// ErrNoQuestions is returned when the bank has nothing to ask.
	ErrNoQuestions = errors.New("quest: question bank is empty")
	// ErrNotFinished is returned when recording a score before the game ended.
	ErrNotFinished = errors.New("quest: game has not finished")
	// ErrAlreadyRecorded is returned on a second Record for the same game.
	ErrAlreadyRecorded = errors.New("quest: score already recorded")
	// ErrEmptyName is returned when recording with a blank player name.
	ErrEmptyName = errors.New("quest: player name is empty")
)
