package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 10, 10, 10),
			b:        NewRect(5, 15, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 10, 10, 10),
			b:        NewRect(15, 10, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 10, 10, 10),
			b:        NewRect(0, 25, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 10, 10, 10),
			b:        NewRect(10, 10, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 10, 10, 10),
			b:        NewRect(0, 20, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 20, 20, 20),
			b:        NewRect(5, 10, 5, 5),
			expected: true,
		},
		{
			name:     "sub-unit overlap",
			a:        NewRect(0, 10, 10, 10),
			b:        NewRect(9.5, 19.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.a.Intersects(tc.b))
			// Also test symmetry
			assert.Equal(t, tc.expected, tc.b.Intersects(tc.a), "reversed")
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 25, 20, 15)

	assert.Equal(t, 25.0, r.Right())
	assert.Equal(t, 10.0, r.Top())
	assert.Equal(t, 25.0, r.Bottom())
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ClampF(tc.val, tc.min, tc.max))
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(100)
	clock := c.Clock()

	assert.Equal(t, int64(100), clock())
	c.Advance(16)
	assert.Equal(t, int64(116), clock())
	c.Set(5)
	assert.Equal(t, int64(5), clock())
}

func TestSystemClockMonotonic(t *testing.T) {
	clock := SystemClock()
	first := clock()
	assert.GreaterOrEqual(t, clock(), first)
	assert.GreaterOrEqual(t, first, int64(0))
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(IntentJump, IntentNone)

	assert.True(t, f.Has(IntentJump))
	assert.False(t, f.Has(IntentNone))
	assert.False(t, f.Has(IntentPause))

	f.Set(IntentPause)
	assert.True(t, f.Has(IntentPause))

	f.Clear()
	assert.True(t, f.Empty())

	var zero InputFrame
	assert.False(t, zero.Has(IntentJump))
	zero.Set(IntentRestart)
	assert.True(t, zero.Has(IntentRestart))
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "ReleaseJump", IntentReleaseJump.String())
	assert.Equal(t, "TogglePause", IntentTogglePause.String())
	assert.Equal(t, "Unknown", Intent(99).String())
}
