package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() Runner {
	cfg := Runner{
		Field: Field{
			Width:   800,
			GroundY: 300,
		},
		Player: Player{
			X:      100,
			Width:  30,
			Height: 40,
		},
		Physics: Physics{
			Gravity:     0.6,
			JumpImpulse: -12,
			CoyoteTime:  80,
		},
		Spawner: Spawner{
			BaseInterval:       2000,
			MinInterval:        800,
			IntervalStep:       150,
			BaseSpeed:          5,
			MaxSpeed:           12,
			SpeedStep:          0.5,
			DifficultyInterval: 30000,
			ObstacleWidth:      30,
			Heights:            []float64{40, 60},
			CullMargin:         50,
			LookBehind:         50,
			LookAhead:          200,
		},
		Score: Score{
			DistanceScale:   10,
			MinClearance:    10,
			MaxClearance:    50,
			StreakThreshold: 3,
			BaseBonus:       50,
			StorageKey:      "neonRunnerHighScore",
		},
		Game: Game{
			DistancePerTick: 5,
		},
	}
	cfg.Physics.GroundY = cfg.Field.GroundY
	return cfg
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
