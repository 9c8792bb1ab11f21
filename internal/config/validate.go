package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks the constraints the runner relies on.
// It returns the first violation found.
func (c Runner) Validate() error {
	if c.Field.Width <= 0 {
		return invalid("field.width must be positive, got %v", c.Field.Width)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return invalid("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Physics.Gravity <= 0 {
		return invalid("physics.gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return invalid("physics.jump_impulse must be negative, got %v", c.Physics.JumpImpulse)
	}
	if c.Physics.CoyoteTime < 0 {
		return invalid("physics.coyote_time_ms must not be negative, got %d", c.Physics.CoyoteTime)
	}

	s := c.Spawner
	if s.BaseInterval <= 0 || s.MinInterval <= 0 {
		return invalid("spawner intervals must be positive")
	}
	if s.MinInterval > s.BaseInterval {
		return invalid("spawner.min_interval_ms %d exceeds base_interval_ms %d", s.MinInterval, s.BaseInterval)
	}
	if s.IntervalStep < 0 || s.SpeedStep < 0 || s.DifficultyInterval < 0 {
		return invalid("spawner steps must not be negative")
	}
	if s.BaseSpeed <= 0 || s.BaseSpeed > s.MaxSpeed {
		return invalid("spawner.base_speed must be in (0, max_speed], got %v", s.BaseSpeed)
	}
	if s.ObstacleWidth <= 0 {
		return invalid("spawner.obstacle_width must be positive, got %v", s.ObstacleWidth)
	}
	if len(s.Heights) == 0 {
		return invalid("spawner.heights must not be empty")
	}
	for _, h := range s.Heights {
		if h <= 0 {
			return invalid("spawner.heights must be positive, got %v", h)
		}
	}
	if s.CullMargin < s.ObstacleWidth {
		return invalid("spawner.cull_margin %v is smaller than obstacle_width %v", s.CullMargin, s.ObstacleWidth)
	}
	if s.LookBehind < 0 || s.LookAhead <= 0 {
		return invalid("spawner lookup window must be non-negative behind and positive ahead")
	}

	sc := c.Score
	if sc.DistanceScale <= 0 {
		return invalid("score.distance_scale must be positive, got %v", sc.DistanceScale)
	}
	if sc.MinClearance >= sc.MaxClearance {
		return invalid("score.min_clearance %v must be below max_clearance %v", sc.MinClearance, sc.MaxClearance)
	}
	if sc.StreakThreshold < 1 {
		return invalid("score.streak_threshold must be at least 1, got %d", sc.StreakThreshold)
	}
	if sc.BaseBonus < 0 {
		return invalid("score.base_bonus must not be negative, got %d", sc.BaseBonus)
	}
	if sc.StorageKey == "" {
		return invalid("score.storage_key must not be empty")
	}

	if c.Game.DistancePerTick < 0 {
		return invalid("game.distance_per_tick must not be negative, got %v", c.Game.DistancePerTick)
	}
	return nil
}
