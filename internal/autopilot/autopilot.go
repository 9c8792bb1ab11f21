// Package autopilot plays the runner without a human. A small behaviour tree
// looks at each snapshot and decides which intents to send next frame.
package autopilot

import (
	"io"

	"github.com/charmbracelet/log"
	bt "github.com/joeycumines/go-behaviortree"

	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/game"
)

// DefaultLeadTicks is how many frames before reaching an obstacle the pilot
// jumps. At base speed this puts the apex roughly over the obstacle.
const DefaultLeadTicks = 14

// Options tunes the pilot.
type Options struct {
	LeadTicks   float64 // Frames of warning before an obstacle; 0 means DefaultLeadTicks
	AutoRestart bool    // Restart after game over
	Logger      *log.Logger
}

// Pilot turns snapshots into input frames.
type Pilot struct {
	opts   Options
	logger *log.Logger
	tree   bt.Node

	// Per-decision state shared with the tree leaves.
	snap  game.Snapshot
	frame core.InputFrame
	jumps int
}

// New builds a pilot.
func New(opts Options) *Pilot {
	if opts.LeadTicks <= 0 {
		opts.LeadTicks = DefaultLeadTicks
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Pilot{opts: opts, logger: logger}
	p.tree = bt.New(
		bt.Selector,
		// Start or restart when the run is not live
		bt.New(
			bt.Sequence,
			p.leaf(p.idle),
			p.leaf(p.begin),
		),
		// Jump when grounded and an obstacle is close
		bt.New(
			bt.Sequence,
			p.leaf(p.playing),
			p.leaf(p.grounded),
			p.leaf(p.obstacleInRange),
			p.leaf(p.jump),
		),
		// Otherwise let go of the jump key
		p.leaf(p.release),
	)
	return p
}

func (p *Pilot) leaf(cond func() bool) bt.Node {
	return bt.New(func([]bt.Node) (bt.Status, error) {
		if cond() {
			return bt.Success, nil
		}
		return bt.Failure, nil
	})
}

// Decide returns the intents for the frame following snap.
func (p *Pilot) Decide(snap game.Snapshot) (core.InputFrame, error) {
	p.snap = snap
	p.frame = core.NewInputFrame()

	if _, err := p.tree.Tick(); err != nil {
		return core.NewInputFrame(), err
	}
	return p.frame, nil
}

// Jumps returns how many jumps the pilot has requested.
func (p *Pilot) Jumps() int {
	return p.jumps
}

func (p *Pilot) idle() bool {
	return p.snap.State == game.StateReady || p.snap.State == game.StateGameOver
}

func (p *Pilot) begin() bool {
	switch p.snap.State {
	case game.StateReady:
		p.frame.Set(core.IntentStart)
		return true
	case game.StateGameOver:
		if !p.opts.AutoRestart {
			return true
		}
		p.logger.Debug("restarting", "score", p.snap.Score)
		p.frame.Set(core.IntentRestart)
		return true
	}
	return false
}

func (p *Pilot) playing() bool {
	return p.snap.State == game.StatePlaying
}

func (p *Pilot) grounded() bool {
	return p.snap.Player.Grounded
}

func (p *Pilot) obstacleInRange() bool {
	o, ok := Ahead(p.snap)
	if !ok {
		return false
	}
	return o.X-p.snap.Player.X <= p.snap.Speed*p.opts.LeadTicks
}

func (p *Pilot) jump() bool {
	p.frame.Set(core.IntentJump)
	p.jumps++
	return true
}

func (p *Pilot) release() bool {
	p.frame.Set(core.IntentReleaseJump)
	return true
}

// Ahead returns the closest obstacle not yet fully behind the player.
func Ahead(snap game.Snapshot) (core.Obstacle, bool) {
	var (
		best  core.Obstacle
		found bool
	)
	for _, o := range snap.Obstacles {
		if o.Right() <= snap.Player.X {
			continue
		}
		if !found || o.X < best.X {
			best = o
			found = true
		}
	}
	return best, found
}
