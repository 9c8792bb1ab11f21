package score

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// fakeKV is an in-memory KV that can be told to fail.
type fakeKV struct {
	data    map[string]string
	getErr  error
	setErr  error
	setCall int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return "", core.ErrNotFound
	}
	return v, nil
}

func (f *fakeKV) Set(key, value string) error {
	f.setCall++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

const key = "neonRunnerHighScore"

func newTestScore(store core.KV) *Score {
	return New(config.DefaultRunnerConfig().Score, store, nil)
}

// obstacle returns a ground obstacle of height h. Its top edge is 300-h.
func obstacle(id uint64, h float64) *core.Obstacle {
	return &core.Obstacle{ID: id, Rect: core.NewRect(200, 300, 30, h)}
}

func TestInitialState(t *testing.T) {
	s := newTestScore(nil)

	assert.Zero(t, s.Distance())
	assert.Zero(t, s.Streak())
	assert.Zero(t, s.Bonus())
	assert.Zero(t, s.PerfectJumps())
	assert.Zero(t, s.HighScore())
}

func TestDistanceFlooredOnRead(t *testing.T) {
	s := newTestScore(nil)

	s.UpdateDistance(95)
	assert.Equal(t, 9, s.Distance())

	s.UpdateDistance(5)
	assert.Equal(t, 10, s.Distance())

	s.UpdateDistance(-50)
	assert.Equal(t, 10, s.Distance(), "distance never decreases")

	// Sub-unit increments accumulate instead of being lost to early flooring
	for i := 0; i < 10; i++ {
		s.UpdateDistance(0.5)
	}
	assert.Equal(t, 10, s.Distance())
	for i := 0; i < 10; i++ {
		s.UpdateDistance(0.5)
	}
	assert.Equal(t, 11, s.Distance())
}

func TestRegisterJumpClassification(t *testing.T) {
	tests := []struct {
		name    string
		playerY float64
		perfect bool
	}{
		{"comfortable clearance", 230, true},
		{"lower band edge (exclusive)", 250, false},
		{"just above lower edge", 249.5, true},
		{"upper band edge (exclusive)", 210, false},
		{"overshoot", 150, false},
		{"near miss", 255, false},
		{"below the top", 280, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestScore(nil)
			assert.Equal(t, tc.perfect, s.RegisterJump(obstacle(1, 40), tc.playerY))
			if tc.perfect {
				assert.Equal(t, 1, s.PerfectJumps())
			} else {
				assert.Zero(t, s.PerfectJumps())
			}
		})
	}
}

func TestRegisterJumpIdempotentPerObstacle(t *testing.T) {
	s := newTestScore(nil)
	o := obstacle(1, 40)

	assert.True(t, s.RegisterJump(o, 230))
	assert.False(t, s.RegisterJump(o, 230))
	assert.Equal(t, 1, s.PerfectJumps())

	// Crediting another obstacle in between does not re-open the first one
	assert.True(t, s.RegisterJump(obstacle(2, 40), 230))
	assert.False(t, s.RegisterJump(o, 230))
	assert.Equal(t, 2, s.PerfectJumps())
}

func TestRegisterJumpNil(t *testing.T) {
	s := newTestScore(nil)
	assert.False(t, s.RegisterJump(nil, 230))
	assert.Zero(t, s.PerfectJumps())
}

func TestStreakAfterThreePerfectJumps(t *testing.T) {
	s := newTestScore(nil)

	for id := uint64(1); id <= 3; id++ {
		require.True(t, s.RegisterJump(obstacle(id, 40), 230))
	}

	assert.Equal(t, 3, s.PerfectJumps())
	assert.Equal(t, 1, s.Streak())
	assert.Equal(t, 50, s.Bonus())
	assert.Equal(t, 50, s.Total())
}

func TestStreakKeepsCompounding(t *testing.T) {
	s := newTestScore(nil)

	for id := uint64(1); id <= 6; id++ {
		s.RegisterJump(obstacle(id, 40), 230)
	}

	// Streak 1..4 on jumps 3..6: 50 + 100 + 150 + 200
	assert.Equal(t, 6, s.PerfectJumps())
	assert.Equal(t, 4, s.Streak())
	assert.Equal(t, 500, s.Bonus())
	assert.Equal(t, 4, s.MaxStreak())
}

func TestImperfectJumpResetsStreak(t *testing.T) {
	s := newTestScore(nil)
	for id := uint64(1); id <= 4; id++ {
		s.RegisterJump(obstacle(id, 40), 230)
	}
	require.Equal(t, 2, s.Streak())

	assert.False(t, s.RegisterJump(obstacle(5, 40), 100))
	assert.Zero(t, s.Streak())
	assert.Zero(t, s.PerfectJumps())
	assert.Equal(t, 150, s.Bonus(), "earned bonus is kept")
	assert.Equal(t, 2, s.MaxStreak())

	// The threshold has to be reached again
	s.RegisterJump(obstacle(6, 40), 230)
	s.RegisterJump(obstacle(7, 40), 230)
	assert.Zero(t, s.Streak())
}

func TestSaveHighScore(t *testing.T) {
	store := newFakeKV()
	store.data[key] = "20"
	s := newTestScore(store)
	require.Equal(t, 20, s.HighScore())

	s.UpdateDistance(150) // 15 points
	assert.False(t, s.SaveHighScore())
	assert.Equal(t, "20", store.data[key])
	assert.Zero(t, store.setCall)

	s.UpdateDistance(50) // 20 points: equal is not a record
	assert.False(t, s.SaveHighScore())
	assert.Zero(t, store.setCall)

	s.UpdateDistance(10) // 21 points
	assert.True(t, s.SaveHighScore())
	assert.Equal(t, "21", store.data[key])
	assert.Equal(t, 21, s.HighScore())
}

func TestHighScoreLoadFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeKV)
	}{
		{"missing", func(*fakeKV) {}},
		{"malformed", func(f *fakeKV) { f.data[key] = "lots" }},
		{"negative", func(f *fakeKV) { f.data[key] = "-5" }},
		{"read failure", func(f *fakeKV) { f.getErr = errors.New("disk on fire") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeKV()
			tc.setup(store)
			assert.Zero(t, newTestScore(store).HighScore())
		})
	}
}

func TestSaveHighScoreWriteFailureIsAbsorbed(t *testing.T) {
	store := newFakeKV()
	store.setErr = errors.New("read-only")
	s := newTestScore(store)

	s.UpdateDistance(100)
	assert.True(t, s.SaveHighScore())
	assert.Equal(t, 10, s.HighScore())
	assert.Equal(t, 1, store.setCall)
}

func TestSaveHighScoreWithoutStore(t *testing.T) {
	s := newTestScore(nil)
	s.UpdateDistance(100)
	assert.True(t, s.SaveHighScore())
	assert.False(t, s.SaveHighScore())
}

func TestResetKeepsHighScore(t *testing.T) {
	s := newTestScore(newFakeKV())
	s.UpdateDistance(1000)
	for id := uint64(1); id <= 3; id++ {
		s.RegisterJump(obstacle(id, 40), 230)
	}
	require.True(t, s.SaveHighScore())

	s.Reset()

	assert.Zero(t, s.Distance())
	assert.Zero(t, s.PerfectJumps())
	assert.Zero(t, s.Streak())
	assert.Zero(t, s.MaxStreak())
	assert.Zero(t, s.Bonus())
	assert.Equal(t, 150, s.HighScore())

	// Credits are per run
	assert.True(t, s.RegisterJump(obstacle(1, 40), 230))
}

func TestPerfectTotalSurvivesStreakReset(t *testing.T) {
	s := newTestScore(nil)
	s.RegisterJump(obstacle(1, 40), 230)
	s.RegisterJump(obstacle(2, 40), 230)
	s.RegisterJump(obstacle(3, 40), 100)
	s.RegisterJump(obstacle(4, 40), 230)

	assert.Equal(t, 1, s.PerfectJumps())
	assert.Equal(t, 3, s.PerfectTotal())
}

func TestObserveHighScore(t *testing.T) {
	kv := newFakeKV()
	s := newTestScore(kv)

	assert.True(t, s.ObserveHighScore(200))
	assert.False(t, s.ObserveHighScore(150))
	assert.Equal(t, 200, s.HighScore())
	assert.Zero(t, kv.setCall, "observing must not write")

	// Only a strictly better total is a new record now
	s.UpdateDistance(2000)
	assert.False(t, s.SaveHighScore())
	s.UpdateDistance(10)
	assert.True(t, s.SaveHighScore())
	assert.Equal(t, "201", kv.data[key])
}

func TestSaveHighScoreRespectsSharedStore(t *testing.T) {
	kv := storage.NewMemoryKV()
	a := newTestScore(kv)
	b := newTestScore(kv)

	b.UpdateDistance(5000)
	require.True(t, b.SaveHighScore())

	// a still has the best it read at start, but must not lower the store
	a.UpdateDistance(3000)
	assert.False(t, a.SaveHighScore())
	assert.Equal(t, 500, a.HighScore())

	v, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "500", v)

	a.UpdateDistance(3000)
	assert.True(t, a.SaveHighScore())
	v, _ = kv.Get(key)
	assert.Equal(t, "600", v)
}
