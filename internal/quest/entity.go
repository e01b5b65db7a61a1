// Package quest implements the Learning Quest game-state engine: entity
// placement, collision detection, the score/level state machine, the
// countdown and the question bank. It performs no I/O; rendering, prompts and
// persistence are reached through the Observer, Scheduler and Recorder
// interfaces.
package quest

import "github.com/vovakirdan/learnquest/internal/core"

// Kind distinguishes field entities.
type Kind int

const (
	KindObstacle Kind = iota
	KindCollectible
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// Entity is a square item on the field. Pos is its top-left corner.
type Entity struct {
	Kind Kind
	Pos  core.Vec
	Size float64
}

// Center returns the centre of the entity's square.
func (e Entity) Center() core.Vec {
	return e.Pos.Add(e.Size/2, e.Size/2)
}

// Field holds the live entities of the current level.
type Field struct {
	Obstacles    []Entity
	Collectibles []Entity
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	return Field{
		Obstacles:    append([]Entity(nil), f.Obstacles...),
		Collectibles: append([]Entity(nil), f.Collectibles...),
	}
}
