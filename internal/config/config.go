// Package config provides YAML-based game tuning and question bank loading
// for Learning Quest, with embedded defaults.
package config

import (
	"errors"
	"fmt"
)

// Score storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// QuestConfig contains all tuning for a Learning Quest session.
type QuestConfig struct {
	Seed         int64             `yaml:"seed"` // 0 = random based on time
	Field        FieldConfig       `yaml:"field"`
	Avatar       AvatarConfig      `yaml:"avatar"`
	Obstacles    ObstacleConfig    `yaml:"obstacles"`
	Collectibles CollectibleConfig `yaml:"collectibles"`
	Scoring      ScoringConfig     `yaml:"scoring"`
	Timer        TimerConfig       `yaml:"timer"`
	Levels       LevelsConfig      `yaml:"levels"`
	Scores       ScoresConfig      `yaml:"scores"`
	Log          LogConfig         `yaml:"log"`
}

// FieldConfig describes the playing field. The Min/Max values bound the
// avatar's centre, not the whole canvas.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	MinX   float64 `yaml:"min_x"`
	MaxX   float64 `yaml:"max_x"`
	MinY   float64 `yaml:"min_y"`
	MaxY   float64 `yaml:"max_y"`
}

// AvatarConfig defines the avatar's start position and step size.
type AvatarConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Step   float64 `yaml:"step"`
}

// SpawnArea is the inclusive integer range entity corners are drawn from.
type SpawnArea struct {
	MinX int `yaml:"min_x"`
	MaxX int `yaml:"max_x"`
	MinY int `yaml:"min_y"`
	MaxY int `yaml:"max_y"`
}

// ObstacleConfig defines obstacle placement and hit parameters.
type ObstacleConfig struct {
	Size           float64   `yaml:"size"`
	BaseCount      int       `yaml:"base_count"`
	PerLevel       int       `yaml:"per_level"`
	Area           SpawnArea `yaml:"area"`
	StartClearance float64   `yaml:"start_clearance"` // from the avatar start position
	HitRadius      float64   `yaml:"hit_radius"`
}

// CollectibleConfig defines collectible placement and hit parameters.
type CollectibleConfig struct {
	Size              float64   `yaml:"size"`
	Count             int       `yaml:"count"`
	Area              SpawnArea `yaml:"area"`
	ObstacleClearance float64   `yaml:"obstacle_clearance"`
	AvatarClearance   float64   `yaml:"avatar_clearance"` // respawn only
	RespawnAttempts   int       `yaml:"respawn_attempts"`
	HitRadius         float64   `yaml:"hit_radius"`
}

// ScoringConfig defines score deltas. Penalties are positive numbers.
type ScoringConfig struct {
	Collectible      int `yaml:"collectible"`
	ObstaclePenalty  int `yaml:"obstacle_penalty"`
	Correct          int `yaml:"correct"`
	IncorrectPenalty int `yaml:"incorrect_penalty"`
}

// TimerConfig defines the countdown.
type TimerConfig struct {
	InitialSeconds int `yaml:"initial_seconds"`
	LevelBonus     int `yaml:"level_bonus"`
	TickMillis     int `yaml:"tick_ms"`
}

// LevelsConfig defines level progression.
type LevelsConfig struct {
	Max          int `yaml:"max"`
	GoalPerLevel int `yaml:"goal_per_level"`
}

// ScoresConfig selects where finished games are recorded.
type ScoresConfig struct {
	Backend      string `yaml:"backend"` // "file" or "sqlite"
	Path         string `yaml:"path"`
	DisplayLimit int    `yaml:"display_limit"`
}

// LogConfig controls the log file written while the TUI owns the terminal.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks the values the engine relies on.
func (c QuestConfig) Validate() error {
	var errs []error

	if c.Levels.Max < 1 {
		errs = append(errs, fmt.Errorf("levels.max must be at least 1, got %d", c.Levels.Max))
	}
	if c.Levels.GoalPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("levels.goal_per_level must be positive, got %d", c.Levels.GoalPerLevel))
	}
	if c.Timer.TickMillis <= 0 {
		errs = append(errs, fmt.Errorf("timer.tick_ms must be positive, got %d", c.Timer.TickMillis))
	}
	if c.Field.MinX > c.Field.MaxX || c.Field.MinY > c.Field.MaxY {
		errs = append(errs, errors.New("field bounds are inverted"))
	}
	if c.Obstacles.BaseCount < 0 {
		errs = append(errs, fmt.Errorf("obstacles.base_count must not be negative, got %d", c.Obstacles.BaseCount))
	}
	if c.Obstacles.PerLevel < 0 {
		errs = append(errs, fmt.Errorf("obstacles.per_level must not be negative, got %d", c.Obstacles.PerLevel))
	}
	if c.Collectibles.Count < 0 {
		errs = append(errs, fmt.Errorf("collectibles.count must not be negative, got %d", c.Collectibles.Count))
	}
	if c.Collectibles.RespawnAttempts < 0 {
		errs = append(errs, fmt.Errorf("collectibles.respawn_attempts must not be negative, got %d", c.Collectibles.RespawnAttempts))
	}
	if err := c.Obstacles.Area.validate("obstacles.area"); err != nil {
		errs = append(errs, err)
	}
	if err := c.Collectibles.Area.validate("collectibles.area"); err != nil {
		errs = append(errs, err)
	}
	switch c.Scores.Backend {
	case BackendFile, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("scores.backend must be %q or %q, got %q", BackendFile, BackendSQLite, c.Scores.Backend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func (a SpawnArea) validate(name string) error {
	if a.MinX > a.MaxX || a.MinY > a.MaxY {
		return fmt.Errorf("%s is inverted: x [%d,%d] y [%d,%d]", name, a.MinX, a.MaxX, a.MinY, a.MaxY)
	}
	return nil
}
