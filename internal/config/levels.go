package config

import (
	"fmt"
	"math"
)

// LevelRules derives per-level parameters from the tuning.
type LevelRules struct {
	levels    LevelsConfig
	obstacles ObstacleConfig
}

// NewLevelRules creates level rules for the given config.
func NewLevelRules(cfg QuestConfig) LevelRules {
	return LevelRules{
		levels:    cfg.Levels,
		obstacles: cfg.Obstacles,
	}
}

// Max returns the final level.
func (r LevelRules) Max() int {
	return r.levels.Max
}

// IsFinal reports whether level is the last one.
func (r LevelRules) IsFinal(level int) bool {
	return level >= r.levels.Max
}

// Goal returns the score needed to leave level. The final level uses the same
// formula; reaching it wins the game.
func (r LevelRules) Goal(level int) int {
	return level * r.levels.GoalPerLevel
}

// ObstacleCount returns how many obstacle candidates are drawn for level.
func (r LevelRules) ObstacleCount(level int) int {
	return r.obstacles.BaseCount + r.obstacles.PerLevel*level
}

// GoalText returns the goal line shown under the field.
func (r LevelRules) GoalText(level int) string {
	if r.IsFinal(level) {
		return fmt.Sprintf("Goal: Reach %d+ points to win the game!", r.Goal(level))
	}
	return fmt.Sprintf("Goal: Reach %d points to advance!", r.Goal(level))
}

// Progress returns score/goal clamped to [0, 1].
func (r LevelRules) Progress(score, level int) float64 {
	goal := r.Goal(level)
	if goal <= 0 {
		return 1
	}
	return clampF(float64(score)/float64(goal), 0.0, 1.0)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
