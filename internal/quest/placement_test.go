package quest

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/learnquest/internal/config"
	"github.com/vovakirdan/learnquest/internal/core"
)

func inArea(p core.Vec, a config.SpawnArea) bool {
	return p.X >= float64(a.MinX) && p.X <= float64(a.MaxX) &&
		p.Y >= float64(a.MinY) && p.Y <= float64(a.MaxY)
}

func TestPlaceObstacles(t *testing.T) {
	cfg := config.DefaultQuestConfig()
	start := core.V(cfg.Avatar.StartX, cfg.Avatar.StartY)

	for seed := int64(0); seed < 50; seed++ {
		p := NewPlacer(cfg, rand.New(rand.NewSource(seed)))
		for level := 1; level <= 3; level++ {
			obs := p.PlaceObstacles(level)
			if limit := 2 + 2*level; len(obs) > limit {
				t.Fatalf("seed %d level %d: %d obstacles, expected at most %d", seed, level, len(obs), limit)
			}
			for _, o := range obs {
				if o.Kind != KindObstacle || o.Size != 40 {
					t.Errorf("unexpected obstacle %+v", o)
				}
				if !inArea(o.Pos, cfg.Obstacles.Area) {
					t.Errorf("obstacle %v outside the spawn area", o.Pos)
				}
				if o.Pos.Chebyshev(start) <= 60 {
					t.Errorf("obstacle %v too close to the avatar start", o.Pos)
				}
				if o.Pos.X != float64(int(o.Pos.X)) || o.Pos.Y != float64(int(o.Pos.Y)) {
					t.Errorf("obstacle %v should sit on integer coordinates", o.Pos)
				}
			}
		}
	}
}

func TestPlaceCollectibles(t *testing.T) {
	cfg := config.DefaultQuestConfig()

	for seed := int64(0); seed < 50; seed++ {
		p := NewPlacer(cfg, rand.New(rand.NewSource(seed)))
		obs := p.PlaceObstacles(3)
		cols := p.PlaceCollectibles(obs)

		if len(cols) > 6 {
			t.Fatalf("seed %d: %d collectibles, expected at most 6", seed, len(cols))
		}
		for _, c := range cols {
			if c.Kind != KindCollectible || c.Size != 30 {
				t.Errorf("unexpected collectible %+v", c)
			}
			if !inArea(c.Pos, cfg.Collectibles.Area) {
				t.Errorf("collectible %v outside the spawn area", c.Pos)
			}
			for _, o := range obs {
				if c.Pos.Chebyshev(o.Pos) < 50 {
					t.Errorf("collectible %v within 50 of obstacle %v", c.Pos, o.Pos)
				}
			}
		}
	}
}

func TestPlaceCollectiblesWithoutObstacles(t *testing.T) {
	cfg := config.DefaultQuestConfig()
	p := NewPlacer(cfg, rand.New(rand.NewSource(1)))

	if cols := p.PlaceCollectibles(nil); len(cols) != 6 {
		t.Errorf("with no obstacles every candidate is kept, got %d", len(cols))
	}
}

func TestPlaceOne(t *testing.T) {
	cfg := config.DefaultQuestConfig()
	avatar := core.V(400, 250)

	for seed := int64(0); seed < 50; seed++ {
		p := NewPlacer(cfg, rand.New(rand.NewSource(seed)))
		obs := p.PlaceObstacles(1)
		c, ok := p.PlaceOne(obs, avatar)
		if !ok {
			continue
		}
		if c.Pos.Chebyshev(avatar) <= 40 {
			t.Errorf("respawn %v too close to the avatar", c.Pos)
		}
		for _, o := range obs {
			if c.Pos.Chebyshev(o.Pos) < 50 {
				t.Errorf("respawn %v within 50 of obstacle %v", c.Pos, o.Pos)
			}
		}
	}
}

func TestPlaceOneGivesUp(t *testing.T) {
	cfg := config.DefaultQuestConfig()
	// Only one possible spot, right on top of the avatar
	cfg.Collectibles.Area = config.SpawnArea{MinX: 100, MaxX: 100, MinY: 200, MaxY: 200}
	p := NewPlacer(cfg, rand.New(rand.NewSource(1)))

	if _, ok := p.PlaceOne(nil, core.V(100, 200)); ok {
		t.Error("PlaceOne should fail when no candidate clears the avatar")
	}
}
