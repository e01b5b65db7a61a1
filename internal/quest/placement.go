package quest

import (
	"math/rand"

	"github.com/vovakirdan/learnquest/internal/config"
	"github.com/vovakirdan/learnquest/internal/core"
)

// Placer generates obstacles and collectibles at random integer positions.
// Candidates that violate a clearance rule are dropped, not resampled, so a
// level may get fewer entities than requested.
type Placer struct {
	rng          *rand.Rand
	obstacles    config.ObstacleConfig
	collectibles config.CollectibleConfig
	rules        config.LevelRules
	start        core.Vec
}

// NewPlacer creates a placer drawing from rng.
func NewPlacer(cfg config.QuestConfig, rng *rand.Rand) *Placer {
	return &Placer{
		rng:          rng,
		obstacles:    cfg.Obstacles,
		collectibles: cfg.Collectibles,
		rules:        config.NewLevelRules(cfg),
		start:        core.V(cfg.Avatar.StartX, cfg.Avatar.StartY),
	}
}

// PlaceObstacles draws the level's obstacle candidates and keeps those clear
// of the avatar start position.
func (p *Placer) PlaceObstacles(level int) []Entity {
	n := p.rules.ObstacleCount(level)
	out := make([]Entity, 0, n)

	for range n {
		pos := p.randomIn(p.obstacles.Area)
		if pos.Chebyshev(p.start) > p.obstacles.StartClearance {
			out = append(out, Entity{Kind: KindObstacle, Pos: pos, Size: p.obstacles.Size})
		}
	}
	return out
}

// PlaceCollectibles draws the fixed number of collectible candidates and keeps
// those clear of every obstacle.
func (p *Placer) PlaceCollectibles(obstacles []Entity) []Entity {
	n := p.collectibles.Count
	out := make([]Entity, 0, n)

	for range n {
		pos := p.randomIn(p.collectibles.Area)
		if p.clearOf(pos, obstacles) {
			out = append(out, p.collectible(pos))
		}
	}
	return out
}

// PlaceOne tries to place a single replacement collectible clear of the
// obstacles and of the avatar. It gives up after the configured number of
// attempts.
func (p *Placer) PlaceOne(obstacles []Entity, avatar core.Vec) (Entity, bool) {
	for range p.collectibles.RespawnAttempts {
		pos := p.randomIn(p.collectibles.Area)
		if p.clearOf(pos, obstacles) && pos.Chebyshev(avatar) > p.collectibles.AvatarClearance {
			return p.collectible(pos), true
		}
	}
	return Entity{}, false
}

// clearOf reports whether pos is at least the obstacle clearance away from
// every obstacle corner on one axis or the other.
func (p *Placer) clearOf(pos core.Vec, obstacles []Entity) bool {
	for _, o := range obstacles {
		if pos.Chebyshev(o.Pos) < p.collectibles.ObstacleClearance {
			return false
		}
	}
	return true
}

func (p *Placer) collectible(pos core.Vec) Entity {
	return Entity{Kind: KindCollectible, Pos: pos, Size: p.collectibles.Size}
}

// randomIn returns a uniformly random integer point in the inclusive area.
func (p *Placer) randomIn(a config.SpawnArea) core.Vec {
	x := a.MinX + p.rng.Intn(a.MaxX-a.MinX+1)
	y := a.MinY + p.rng.Intn(a.MaxY-a.MinY+1)
	return core.V(float64(x), float64(y))
}
