// Package physics advances the player's vertical motion, grants jumps with a
// coyote-time grace window, and tests rectangle overlap.
package physics

import (
	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Body is a rectangle that moves vertically under gravity.
type Body struct {
	core.Rect
	VelocityY    float64 // Positive is downward
	Grounded     bool    // Standing on the ground plane
	Jumping      bool    // Set by a jump, cleared by ReleaseJump
	LastGrounded int64   // Clock reading of the last ground contact
}

// Physics applies gravity and jump rules from a fixed configuration.
type Physics struct {
	cfg   config.Physics
	clock core.Clock
}

// New creates a physics engine reading time from clock.
func New(cfg config.Physics, clock core.Clock) *Physics {
	return &Physics{cfg: cfg, clock: clock}
}

// GroundY returns the ground plane's y-coordinate.
func (p *Physics) GroundY() float64 {
	return p.cfg.GroundY
}

// NewBody creates a body resting on the ground at x.
func (p *Physics) NewBody(x, w, h float64) *Body {
	return &Body{
		Rect:         core.NewRect(x, p.cfg.GroundY, w, h),
		Grounded:     true,
		LastGrounded: p.clock(),
	}
}

// ApplyGravity advances an airborne body by one tick and resolves ground contact.
// A body resting on the ground keeps its position, but LastGrounded is
// refreshed to the current time on every call.
func (p *Physics) ApplyGravity(b *Body) {
	if !b.Grounded {
		b.VelocityY += p.cfg.Gravity
		b.Y += b.VelocityY
	}

	if b.Y >= p.cfg.GroundY {
		b.Y = p.cfg.GroundY
		b.VelocityY = 0
		b.Grounded = true
		b.LastGrounded = p.clock()
	} else {
		b.Grounded = false
	}
}

// CanJump reports whether a jump would succeed now.
func (p *Physics) CanJump(b *Body) bool {
	if b.Jumping {
		return false
	}
	return b.Grounded || p.clock()-b.LastGrounded <= p.cfg.CoyoteTime
}

// Jump launches the body if it is grounded or within the coyote window and
// not already mid-jump. Returns true if the jump happened.
func (p *Physics) Jump(b *Body) bool {
	if !p.CanJump(b) {
		return false
	}
	b.VelocityY = p.cfg.JumpImpulse
	b.Grounded = false
	b.Jumping = true
	return true
}

// ReleaseJump re-arms jumping once the jump input is let go.
func (p *Physics) ReleaseJump(b *Body) {
	b.Jumping = false
}

// CheckCollision reports whether two rectangles strictly overlap.
func CheckCollision(a, b core.Rect) bool {
	return a.Intersects(b)
}
