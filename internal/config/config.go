// Package config provides YAML-based configuration loading, difficulty
// presets and validation for the runner.
package config

// Runner contains all configuration for a Neon Runner game.
type Runner struct {
	Field   Field   `yaml:"field"`
	Player  Player  `yaml:"player"`
	Physics Physics `yaml:"physics"`
	Spawner Spawner `yaml:"spawner"`
	Score   Score   `yaml:"score"`
	Game    Game    `yaml:"game"`
}

// Field describes the visible play field.
type Field struct {
	Width   float64 `yaml:"width"`    // Obstacles spawn at this x
	GroundY float64 `yaml:"ground_y"` // Bottom edge of anything standing on the ground
}

// Player defines the player's fixed geometry.
type Player struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines gravity and jump parameters.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`        // Added to vertical velocity each tick
	JumpImpulse float64 `yaml:"jump_impulse"`   // Negative, upward
	CoyoteTime  int64   `yaml:"coyote_time_ms"` // Grace after leaving the ground, inclusive
	GroundY     float64 `yaml:"-"`              // Copied from Field
}

// Spawner defines obstacle spawning and the difficulty ramp.
type Spawner struct {
	BaseInterval       int64     `yaml:"base_interval_ms"`
	MinInterval        int64     `yaml:"min_interval_ms"`
	IntervalStep       int64     `yaml:"interval_step_ms"`
	BaseSpeed          float64   `yaml:"base_speed"`
	MaxSpeed           float64   `yaml:"max_speed"`
	SpeedStep          float64   `yaml:"speed_step"`
	DifficultyInterval int64     `yaml:"difficulty_interval_ms"` // 0 disables the ramp
	ObstacleWidth      float64   `yaml:"obstacle_width"`
	Heights            []float64 `yaml:"heights"`
	CullMargin         float64   `yaml:"cull_margin"`
	LookBehind         float64   `yaml:"look_behind"`
	LookAhead          float64   `yaml:"look_ahead"`
}

// Score defines distance scoring and the perfect-jump bonus rule.
type Score struct {
	DistanceScale   float64 `yaml:"distance_scale"`
	MinClearance    float64 `yaml:"min_clearance"` // Exclusive
	MaxClearance    float64 `yaml:"max_clearance"` // Exclusive
	StreakThreshold int     `yaml:"streak_threshold"`
	BaseBonus       int     `yaml:"base_bonus"`
	StorageKey      string  `yaml:"storage_key"`
}

// Game defines orchestrator parameters.
type Game struct {
	DistancePerTick float64 `yaml:"distance_per_tick"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}
