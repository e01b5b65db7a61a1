package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left arrow, A, H
	ActionRight         // Right arrow, D, L
	ActionUp            // Up arrow, W, K
	ActionDown          // Down arrow, S, J
	ActionStart         // Enter on the welcome / game over screens
	ActionAsk           // Open a question
	ActionConfirm       // Submit the selected answer
	ActionSkip          // Skip the open question
	ActionScores        // Show the high score table
	ActionHelp          // Show help
	ActionBack          // Close the current overlay
	ActionQuit          // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionStart:
		return "Start"
	case ActionAsk:
		return "Ask"
	case ActionConfirm:
		return "Confirm"
	case ActionSkip:
		return "Skip"
	case ActionScores:
		return "Scores"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction is a movement direction on the field.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Delta returns the unit offset for the direction. Y grows downward.
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Direction maps a movement action to its direction; other actions map to DirNone.
func (a Action) Direction() Direction {
	switch a {
	case ActionLeft:
		return DirLeft
	case ActionRight:
		return DirRight
	case ActionUp:
		return DirUp
	case ActionDown:
		return DirDown
	default:
		return DirNone
	}
}
