// Package spawner owns the runner's obstacles: it decides when to create
// them, scrolls them left, culls them off-screen and ramps difficulty over
// elapsed game time.
package spawner

import (
	"math/rand"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Spawner handles spawning, movement and removal of obstacles.
type Spawner struct {
	cfg   config.Spawner
	field config.Field
	clock core.Clock
	rng   *rand.Rand

	obstacles []*core.Obstacle
	nextID    uint64

	lastSpawn              int64
	lastDifficultyIncrease int64
	interval               int64
	speed                  float64
	level                  int
}

// New creates a spawner with the given RNG seed and resets it to the clock's
// current time.
func New(cfg config.Spawner, field config.Field, clock core.Clock, seed int64) *Spawner {
	s := &Spawner{
		cfg:       cfg,
		field:     field,
		clock:     clock,
		rng:       rand.New(rand.NewSource(seed)),
		obstacles: make([]*core.Obstacle, 0, 8),
	}
	s.Reset()
	return s
}

// Reset clears all obstacles and restores the initial difficulty.
// Both timers restart at the clock's current time.
func (s *Spawner) Reset() {
	now := s.clock()
	s.obstacles = s.obstacles[:0]
	s.lastSpawn = now
	s.lastDifficultyIncrease = now
	s.interval = s.cfg.BaseInterval
	s.speed = s.cfg.BaseSpeed
	s.level = 1
}

// Reseed replaces the RNG used for obstacle heights.
func (s *Spawner) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Update advances the spawner to now: it ramps difficulty, spawns at most one
// obstacle, then scrolls and culls the obstacles that existed before the call.
// It reports whether the difficulty level went up.
//
// Difficulty rises at most once per call, so a single large jump in time
// only counts as one interval.
func (s *Spawner) Update(now int64) (leveledUp bool) {
	leveledUp = s.updateDifficulty(now)

	// Move cacti left, dropping the ones fully past the left edge
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.X -= s.speed
		if o.X >= -s.cfg.CullMargin {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(s.obstacles); i++ {
		s.obstacles[i] = nil
	}
	s.obstacles = kept

	// A new obstacle appears at the right edge and starts moving next tick
	if now-s.lastSpawn > s.interval {
		s.spawn()
		s.lastSpawn = now
	}

	return leveledUp
}

func (s *Spawner) updateDifficulty(now int64) bool {
	if s.cfg.DifficultyInterval <= 0 {
		return false
	}
	if now-s.lastDifficultyIncrease <= s.cfg.DifficultyInterval {
		return false
	}

	s.level++
	s.lastDifficultyIncrease = now
	s.interval = max(s.cfg.MinInterval, s.interval-s.cfg.IntervalStep)
	s.speed = min(s.cfg.MaxSpeed, s.speed+s.cfg.SpeedStep)
	return true
}

// spawn appends a single obstacle at the right edge of the field.
func (s *Spawner) spawn() {
	height := s.cfg.Heights[0]
	if n := len(s.cfg.Heights); n > 1 {
		height = s.cfg.Heights[s.rng.Intn(n)]
	}

	s.nextID++
	s.obstacles = append(s.obstacles, &core.Obstacle{
		ID:   s.nextID,
		Rect: core.NewRect(s.field.Width, s.field.GroundY, s.cfg.ObstacleWidth, height),
	})
}

// Obstacles returns the current obstacles. Callers must not modify them or
// keep the slice across ticks.
func (s *Spawner) Obstacles() []*core.Obstacle {
	return s.obstacles
}

// Nearest returns the closest obstacle not yet behind x whose left edge lies
// strictly inside (x - LookBehind, x + LookAhead), or nil if there is none.
// Obstacles whose right edge is at or left of x have been passed and are
// skipped.
func (s *Spawner) Nearest(x float64) *core.Obstacle {
	var nearest *core.Obstacle
	for _, o := range s.obstacles {
		if o.X <= x-s.cfg.LookBehind || o.X >= x+s.cfg.LookAhead {
			continue
		}
		if o.Right() <= x {
			continue
		}
		if nearest == nil || o.X < nearest.X {
			nearest = o
		}
	}
	return nearest
}

// Level returns the current difficulty level, starting at 1.
func (s *Spawner) Level() int {
	return s.level
}

// Speed returns the distance obstacles move per tick.
func (s *Spawner) Speed() float64 {
	return s.speed
}

// Interval returns the current minimum time between spawns in ms.
func (s *Spawner) Interval() int64 {
	return s.interval
}
