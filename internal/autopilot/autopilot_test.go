package autopilot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/game"
	"github.com/vovakirdan/neon-runner/internal/physics"
)

func playingSnap() game.Snapshot {
	return game.Snapshot{
		State: game.StatePlaying,
		Player: physics.Body{
			Rect:     core.NewRect(100, 300, 30, 40),
			Grounded: true,
		},
		Speed: 5,
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		snap   func() game.Snapshot
		want   []core.Intent
		absent []core.Intent
	}{
		{
			name: "ready starts",
			snap: func() game.Snapshot { return game.Snapshot{State: game.StateReady} },
			want: []core.Intent{core.IntentStart},
		},
		{
			name:   "game over waits",
			snap:   func() game.Snapshot { return game.Snapshot{State: game.StateGameOver} },
			absent: []core.Intent{core.IntentRestart, core.IntentJump},
		},
		{
			name: "game over restarts",
			opts: Options{AutoRestart: true},
			snap: func() game.Snapshot { return game.Snapshot{State: game.StateGameOver} },
			want: []core.Intent{core.IntentRestart},
		},
		{
			name:   "no obstacles releases",
			snap:   playingSnap,
			want:   []core.Intent{core.IntentReleaseJump},
			absent: []core.Intent{core.IntentJump},
		},
		{
			name: "far obstacle releases",
			snap: func() game.Snapshot {
				s := playingSnap()
				s.Obstacles = []core.Obstacle{{ID: 1, Rect: core.NewRect(400, 300, 30, 40)}}
				return s
			},
			want:   []core.Intent{core.IntentReleaseJump},
			absent: []core.Intent{core.IntentJump},
		},
		{
			name: "close obstacle jumps",
			snap: func() game.Snapshot {
				s := playingSnap()
				s.Obstacles = []core.Obstacle{{ID: 1, Rect: core.NewRect(170, 300, 30, 60)}}
				return s
			},
			want:   []core.Intent{core.IntentJump},
			absent: []core.Intent{core.IntentReleaseJump},
		},
		{
			name: "airborne does not jump",
			snap: func() game.Snapshot {
				s := playingSnap()
				s.Player.Grounded = false
				s.Player.Y = 250
				s.Obstacles = []core.Obstacle{{ID: 1, Rect: core.NewRect(150, 300, 30, 60)}}
				return s
			},
			want:   []core.Intent{core.IntentReleaseJump},
			absent: []core.Intent{core.IntentJump},
		},
		{
			name: "paused only releases",
			snap: func() game.Snapshot {
				s := playingSnap()
				s.State = game.StatePaused
				s.Obstacles = []core.Obstacle{{ID: 1, Rect: core.NewRect(150, 300, 30, 60)}}
				return s
			},
			absent: []core.Intent{core.IntentJump, core.IntentStart},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.opts)
			frame, err := p.Decide(tt.snap())
			require.NoError(t, err)
			for _, in := range tt.want {
				assert.True(t, frame.Has(in), "missing %s", in)
			}
			for _, in := range tt.absent {
				assert.False(t, frame.Has(in), "unexpected %s", in)
			}
		})
	}
}

func TestAheadSkipsPassedObstacles(t *testing.T) {
	s := playingSnap()
	s.Obstacles = []core.Obstacle{
		{ID: 1, Rect: core.NewRect(60, 300, 30, 40)},  // Right() == 90, behind
		{ID: 2, Rect: core.NewRect(500, 300, 30, 40)}, // far
		{ID: 3, Rect: core.NewRect(220, 300, 30, 40)},
	}

	o, ok := Ahead(s)
	require.True(t, ok)
	assert.Equal(t, uint64(3), o.ID)

	s.Obstacles = s.Obstacles[:1]
	_, ok = Ahead(s)
	assert.False(t, ok)
}

func TestPilotClearsObstacles(t *testing.T) {
	clock := core.NewManualClock(0)
	g := game.New(config.DefaultRunnerConfig(), clock.Clock(), nil, nil, 7)
	p := New(Options{})

	snap := g.Snapshot()
	for i := 0; i < 1500; i++ {
		frame, err := p.Decide(snap)
		require.NoError(t, err)
		clock.Advance(16)
		snap = g.Step(frame)
		require.NotEqual(t, game.StateGameOver, snap.State, "crashed at tick %d", snap.Ticks)
	}

	sum := g.Summary()
	assert.GreaterOrEqual(t, sum.PerfectJumps, 5)
	assert.Positive(t, sum.Bonus)
	assert.GreaterOrEqual(t, p.Jumps(), sum.PerfectJumps)
}
