package game

import (
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/physics"
)

// Snapshot is a read-only copy of the game state for renderers.
// It shares no memory with the live game.
type Snapshot struct {
	State     State
	Player    physics.Body
	Obstacles []core.Obstacle

	Score        int
	HighScore    int
	Distance     int
	PerfectJumps int
	Streak       int
	MaxStreak    int
	Bonus        int
	NewRecord    bool

	Level int
	Speed float64

	ElapsedMS int64
	Ticks     int

	FieldWidth float64
	GroundY    float64
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]core.Obstacle, 0, len(g.spawner.Obstacles()))
	for _, o := range g.spawner.Obstacles() {
		obstacles = append(obstacles, *o)
	}

	return Snapshot{
		State:        g.state,
		Player:       *g.player,
		Obstacles:    obstacles,
		Score:        g.score.Total(),
		HighScore:    g.score.HighScore(),
		Distance:     g.score.Distance(),
		PerfectJumps: g.score.PerfectJumps(),
		Streak:       g.score.Streak(),
		MaxStreak:    g.score.MaxStreak(),
		Bonus:        g.score.Bonus(),
		NewRecord:    g.newRecord,
		Level:        g.spawner.Level(),
		Speed:        g.spawner.Speed(),
		ElapsedMS:    g.elapsed(),
		Ticks:        g.ticks,
		FieldWidth:   g.cfg.Field.Width,
		GroundY:      g.cfg.Field.GroundY,
	}
}

// Summary describes a finished (or running) run for history records.
type Summary struct {
	Score        int
	Distance     int
	Bonus        int
	PerfectJumps int // All perfect jumps this run, not only the current chain
	MaxStreak    int
	Level        int
	DurationMS   int64
}

// Summary returns the run totals.
func (g *Game) Summary() Summary {
	return Summary{
		Score:        g.score.Total(),
		Distance:     g.score.Distance(),
		Bonus:        g.score.Bonus(),
		PerfectJumps: g.score.PerfectTotal(),
		MaxStreak:    g.score.MaxStreak(),
		Level:        g.spawner.Level(),
		DurationMS:   g.elapsed(),
	}
}
