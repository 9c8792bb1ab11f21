package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

func newTestPhysics(start int64) (*Physics, *core.ManualClock) {
	clock := core.NewManualClock(start)
	cfg := config.DefaultRunnerConfig()
	return New(cfg.Physics, clock.Clock()), clock
}

func TestApplyGravityAirborne(t *testing.T) {
	p, _ := newTestPhysics(0)
	b := &Body{Rect: core.NewRect(100, 200, 30, 40), VelocityY: -3}

	p.ApplyGravity(b)

	assert.InDelta(t, -2.4, b.VelocityY, 1e-9)
	assert.InDelta(t, 197.6, b.Y, 1e-9)
	assert.False(t, b.Grounded)
}

func TestApplyGravityNearGroundStillIntegrates(t *testing.T) {
	p, _ := newTestPhysics(0)
	b := &Body{Rect: core.NewRect(100, 299.9, 30, 40), VelocityY: -5}

	p.ApplyGravity(b)

	assert.InDelta(t, -4.4, b.VelocityY, 1e-9)
	assert.InDelta(t, 295.5, b.Y, 1e-9)
}

func TestApplyGravityLandingClamps(t *testing.T) {
	p, clock := newTestPhysics(0)
	b := &Body{Rect: core.NewRect(100, 295, 30, 40), VelocityY: 8}
	clock.Set(1234)

	p.ApplyGravity(b)

	assert.Equal(t, 300.0, b.Y)
	assert.Zero(t, b.VelocityY)
	assert.True(t, b.Grounded)
	assert.Equal(t, int64(1234), b.LastGrounded)
}

func TestApplyGravityAtRestIsStable(t *testing.T) {
	p, _ := newTestPhysics(0)
	b := p.NewBody(100, 30, 40)

	for i := 0; i < 10; i++ {
		p.ApplyGravity(b)
	}

	assert.Equal(t, 300.0, b.Y)
	assert.Zero(t, b.VelocityY)
	assert.True(t, b.Grounded)
}

func TestJumpFromGround(t *testing.T) {
	p, _ := newTestPhysics(0)
	b := p.NewBody(100, 30, 40)

	require.True(t, p.Jump(b))
	assert.Equal(t, -12.0, b.VelocityY)
	assert.False(t, b.Grounded)
	assert.True(t, b.Jumping)

	// Held key: no second jump until released
	assert.False(t, p.Jump(b))
}

func TestJumpCoyoteWindow(t *testing.T) {
	tests := []struct {
		name    string
		elapsed int64
		want    bool
	}{
		{"well inside", 40, true},
		{"boundary inclusive", 80, true},
		{"just outside", 81, false},
		{"long gone", 500, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, clock := newTestPhysics(1000)
			b := &Body{
				Rect:         core.NewRect(100, 280, 30, 40),
				Grounded:     false,
				LastGrounded: 1000,
			}
			clock.Advance(tc.elapsed)

			assert.Equal(t, tc.want, p.Jump(b))
		})
	}
}

func TestReleaseJumpRearms(t *testing.T) {
	p, _ := newTestPhysics(0)
	b := p.NewBody(100, 30, 40)

	require.True(t, p.Jump(b))
	for !b.Grounded {
		p.ApplyGravity(b)
	}
	assert.False(t, p.Jump(b), "jump key still held")

	p.ReleaseJump(b)
	assert.True(t, p.Jump(b))
}

func TestJumpArcReturnsToGround(t *testing.T) {
	p, _ := newTestPhysics(0)
	b := p.NewBody(100, 30, 40)
	require.True(t, p.Jump(b))

	minY := b.Y
	ticks := 0
	for !b.Grounded && ticks < 1000 {
		p.ApplyGravity(b)
		if b.Y < minY {
			minY = b.Y
		}
		ticks++
	}

	assert.True(t, b.Grounded)
	assert.Less(t, minY, 300.0-100)
	assert.Less(t, ticks, 100)
}

func TestCheckCollision(t *testing.T) {
	player := core.NewRect(100, 300, 30, 40)

	tests := []struct {
		name     string
		other    core.Rect
		expected bool
	}{
		{"overlapping", core.NewRect(110, 300, 30, 40), true},
		{"separated horizontally", core.NewRect(200, 300, 30, 40), false},
		{"separated vertically", core.NewRect(100, 200, 30, 40), false},
		{"touching right edge", core.NewRect(130, 300, 30, 40), false},
		{"touching top edge", core.NewRect(100, 260, 30, 40), false},
		{"player above obstacle", core.NewRect(100, 300, 30, 40), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CheckCollision(player, tc.other))
			assert.Equal(t, CheckCollision(player, tc.other), CheckCollision(tc.other, player))
		})
	}
}
