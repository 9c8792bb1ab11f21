// Package game ties physics, spawner and score together once per frame and
// exposes a read-only snapshot for renderers.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/physics"
	"github.com/vovakirdan/neon-runner/internal/score"
	"github.com/vovakirdan/neon-runner/internal/spawner"
)

// State is the game's lifecycle state.
type State int

const (
	StateReady State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Game implements the Neon Runner rules.
type Game struct {
	cfg    config.Runner
	wall   core.Clock
	logger *log.Logger

	physics *physics.Physics
	spawner *spawner.Spawner
	score   *score.Score
	player  *physics.Body

	state       State
	startTime   int64 // Game time when the run started
	endTime     int64 // Game time when the run ended
	pausedTotal int64 // Wall time spent paused, excluded from game time
	pauseStart  int64 // Wall time the current pause began
	ticks       int
	newRecord   bool

	// Obstacle locked in by the last successful jump, credited once the
	// player has passed over it.
	target     *core.Obstacle
	targetLow  float64 // Lowest bottom edge seen while over the target
	targetOver bool
}

// New creates a game in the ready state. The best score is read from store;
// a nil store or logger is allowed.
func New(cfg config.Runner, clock core.Clock, store core.KV, logger *log.Logger, seed int64) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.Physics.GroundY = cfg.Field.GroundY

	g := &Game{
		cfg:    cfg,
		wall:   clock,
		logger: logger,
		state:  StateReady,
	}
	g.physics = physics.New(cfg.Physics, g.now)
	g.spawner = spawner.New(cfg.Spawner, cfg.Field, g.now, seed)
	g.score = score.New(cfg.Score, store, logger)
	g.player = g.physics.NewBody(cfg.Player.X, cfg.Player.Width, cfg.Player.Height)
	return g
}

// now returns game time: wall time minus paused time. It stands still while
// the game is paused.
func (g *Game) now() int64 {
	if g.state == StatePaused {
		return g.pauseStart - g.pausedTotal
	}
	return g.wall() - g.pausedTotal
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Reseed changes the obstacle RNG; it takes effect from the next spawn.
func (g *Game) Reseed(seed int64) {
	g.spawner.Reseed(seed)
}

// reset restores every subsystem for a new run. The best score is kept.
func (g *Game) reset() {
	g.pausedTotal = 0
	g.pauseStart = 0
	g.ticks = 0
	g.newRecord = false
	g.target = nil
	g.targetOver = false

	g.spawner.Reset()
	g.score.Reset()
	g.player = g.physics.NewBody(g.cfg.Player.X, g.cfg.Player.Width, g.cfg.Player.Height)
}

// Start begins a new run from the ready or game-over state.
func (g *Game) Start() bool {
	if g.state != StateReady && g.state != StateGameOver {
		return false
	}
	g.state = StatePlaying
	g.reset()
	g.startTime = g.now()
	g.logger.Info("run started", "best", g.score.HighScore())
	return true
}

// Restart begins a new run after game over. It does nothing in other states.
func (g *Game) Restart() bool {
	if g.state != StateGameOver {
		return false
	}
	return g.Start()
}

// Pause freezes a running game.
func (g *Game) Pause() bool {
	if g.state != StatePlaying {
		return false
	}
	g.pauseStart = g.wall()
	g.state = StatePaused
	return true
}

// Resume continues a paused game. The paused span is excluded from game time.
func (g *Game) Resume() bool {
	if g.state != StatePaused {
		return false
	}
	g.pausedTotal += g.wall() - g.pauseStart
	g.pauseStart = 0
	g.state = StatePlaying
	return true
}

// TogglePause pauses a running game or resumes a paused one.
func (g *Game) TogglePause() bool {
	if g.state == StatePaused {
		return g.Resume()
	}
	return g.Pause()
}

// Jump attempts a jump. On success the nearest obstacle around the player is
// locked in for perfect-jump scoring.
func (g *Game) Jump() bool {
	if g.state != StatePlaying {
		return false
	}
	if !g.physics.Jump(g.player) {
		return false
	}

	if o := g.spawner.Nearest(g.player.X); o != nil && g.target == nil {
		g.target = o
		g.targetOver = false
		g.targetLow = g.player.Y
	}
	return true
}

// ReleaseJump re-arms the jump after the jump input is let go.
func (g *Game) ReleaseJump() {
	g.physics.ReleaseJump(g.player)
}

// Step applies the frame's intents and advances one tick.
// Intents are applied in a fixed order: start/restart, pause controls,
// jump release, jump.
func (g *Game) Step(in core.InputFrame) Snapshot {
	if in.Has(core.IntentStart) {
		g.Start()
	}
	if in.Has(core.IntentRestart) {
		g.Restart()
	}

	switch {
	case in.Has(core.IntentTogglePause):
		g.TogglePause()
	case in.Has(core.IntentPause):
		g.Pause()
	case in.Has(core.IntentResume):
		g.Resume()
	}

	if in.Has(core.IntentReleaseJump) {
		g.ReleaseJump()
	}
	if in.Has(core.IntentJump) {
		g.Jump()
	}

	g.Tick()
	return g.Snapshot()
}

// Tick advances a running game by one frame: distance, gravity, obstacles,
// then collisions. It does nothing unless the game is playing.
func (g *Game) Tick() {
	if g.state != StatePlaying {
		return
	}
	g.ticks++

	g.score.UpdateDistance(g.cfg.Game.DistancePerTick)
	g.physics.ApplyGravity(g.player)

	if g.spawner.Update(g.now()) {
		g.logger.Debug("difficulty up",
			"level", g.spawner.Level(),
			"speed", g.spawner.Speed(),
			"interval", g.spawner.Interval(),
		)
	}

	for _, o := range g.spawner.Obstacles() {
		if physics.CheckCollision(g.player.Rect, o.Rect) {
			g.gameOver()
			return
		}
	}

	g.trackTarget()
}

// trackTarget follows the locked-in obstacle while the player is over it and
// credits the jump once the obstacle is behind the player.
func (g *Game) trackTarget() {
	o := g.target
	if o == nil {
		return
	}

	if o.Right() > g.player.X && o.X < g.player.Right() {
		if !g.targetOver || g.player.Y > g.targetLow {
			g.targetLow = g.player.Y
		}
		g.targetOver = true
		return
	}

	if o.Right() <= g.player.X {
		if !g.targetOver {
			g.targetLow = g.player.Y
		}
		if g.score.RegisterJump(o, g.targetLow) {
			g.logger.Debug("perfect jump",
				"obstacle", o.ID,
				"clearance", o.Top()-g.targetLow,
				"streak", g.score.Streak(),
			)
		}
		g.target = nil
		g.targetOver = false
	}
}

// Finish ends a running or paused run as if it had collided, saving the best
// score. Headless runs use it when they stop early. It returns false when no
// run is in progress.
func (g *Game) Finish() bool {
	if g.state != StatePlaying && g.state != StatePaused {
		return false
	}
	if g.state == StatePaused {
		g.Resume()
	}
	g.gameOver()
	return true
}

func (g *Game) gameOver() {
	g.state = StateGameOver
	g.endTime = g.now()
	g.target = nil
	g.newRecord = g.score.SaveHighScore()

	g.logger.Info("game over",
		"score", g.score.Total(),
		"distance", g.score.Distance(),
		"bonus", g.score.Bonus(),
		"level", g.spawner.Level(),
		"record", g.newRecord,
	)
}

// ObserveHighScore records a best score reached elsewhere, such as by
// another player sharing the same store.
func (g *Game) ObserveHighScore(v int) {
	g.score.ObserveHighScore(v)
}

// elapsed returns the run's game time in ms.
func (g *Game) elapsed() int64 {
	switch g.state {
	case StateReady:
		return 0
	case StateGameOver:
		return g.endTime - g.startTime
	default:
		return g.now() - g.startTime
	}
}
