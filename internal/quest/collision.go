package quest

import (
	"slices"

	"github.com/vovakirdan/learnquest/internal/config"
	"github.com/vovakirdan/learnquest/internal/core"
)

// CollisionResult reports what a single collision pass consumed.
type CollisionResult struct {
	Obstacle    *Entity
	Collectible *Entity
}

// Any reports whether anything was hit.
func (r CollisionResult) Any() bool {
	return r.Obstacle != nil || r.Collectible != nil
}

// Detector runs square proximity tests between the avatar centre and entity
// centres.
type Detector struct {
	ObstacleRadius    float64
	CollectibleRadius float64
}

// NewDetector creates a detector from the tuning.
func NewDetector(cfg config.QuestConfig) Detector {
	return Detector{
		ObstacleRadius:    cfg.Obstacles.HitRadius,
		CollectibleRadius: cfg.Collectibles.HitRadius,
	}
}

// Check finds the first obstacle and the first collectible the avatar
// touches and removes them from the field. Obstacles are processed first.
func (d Detector) Check(avatar core.Vec, f *Field) CollisionResult {
	var res CollisionResult
	res.Obstacle = takeFirst(avatar, &f.Obstacles, d.ObstacleRadius)
	res.Collectible = takeFirst(avatar, &f.Collectibles, d.CollectibleRadius)
	return res
}

func takeFirst(avatar core.Vec, entities *[]Entity, radius float64) *Entity {
	for i, e := range *entities {
		if avatar.Within(e.Center(), radius) {
			hit := e
			*entities = slices.Delete(*entities, i, i+1)
			return &hit
		}
	}
	return nil
}
