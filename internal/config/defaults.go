package config

import (
	_ "embed"
)

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

//go:embed defaults/questions.yaml
var defaultQuestionsYAML []byte

// DefaultQuestConfig returns the built-in tuning. It mirrors
// defaults/quest.yaml and is used if the embedded file cannot be parsed.
func DefaultQuestConfig() QuestConfig {
	return QuestConfig{
		Seed: 0,
		Field: FieldConfig{
			Width:  800,
			Height: 450,
			MinX:   20,
			MaxX:   780,
			MinY:   90,
			MaxY:   400,
		},
		Avatar: AvatarConfig{
			StartX: 400,
			StartY: 400,
			Step:   25,
		},
		Obstacles: ObstacleConfig{
			Size:           40,
			BaseCount:      2,
			PerLevel:       2,
			Area:           SpawnArea{MinX: 50, MaxX: 710, MinY: 100, MaxY: 350},
			StartClearance: 60,
			HitRadius:      35,
		},
		Collectibles: CollectibleConfig{
			Size:              30,
			Count:             6,
			Area:              SpawnArea{MinX: 50, MaxX: 710, MinY: 100, MaxY: 350},
			ObstacleClearance: 50,
			AvatarClearance:   40,
			RespawnAttempts:   10,
			HitRadius:         30,
		},
		Scoring: ScoringConfig{
			Collectible:      10,
			ObstaclePenalty:  5,
			Correct:          20,
			IncorrectPenalty: 10,
		},
		Timer: TimerConfig{
			InitialSeconds: 60,
			LevelBonus:     30,
			TickMillis:     1000,
		},
		Levels: LevelsConfig{
			Max:          3,
			GoalPerLevel: 50,
		},
		Scores: ScoresConfig{
			Backend:      BackendFile,
			Path:         "learning_quest_scores.txt",
			DisplayLimit: 10,
		},
		Log: LogConfig{
			Path:  "~/.learnquest/learnquest.log",
			Level: "info",
		},
	}
}
