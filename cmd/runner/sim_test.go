package main

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/neon-runner/internal/autopilot"
	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	a, err := simulate(cfg, storage.NewMemoryKV(), nil, 42, 60, 3000, autopilot.DefaultLeadTicks)
	require.NoError(t, err)
	b, err := simulate(cfg, storage.NewMemoryKV(), nil, 42, 60, 3000, autopilot.DefaultLeadTicks)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Positive(t, a.Score)
}

func TestSimulateStopsAtTickLimit(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	sum, err := simulate(cfg, storage.NewMemoryKV(), nil, 1, 60, 100, autopilot.DefaultLeadTicks)
	require.NoError(t, err)

	// 100 frames at 5 units each
	assert.Equal(t, 50, sum.Distance)
	assert.Zero(t, sum.Bonus)
}

func TestLoadRunnerRejectsUnknownDifficulty(t *testing.T) {
	old := flagDifficulty
	t.Cleanup(func() { flagDifficulty = old })

	flagDifficulty = "nightmare"
	_, err := loadRunner()
	assert.Error(t, err)

	flagDifficulty = "fixed"
	cfg, err := loadRunner()
	require.NoError(t, err)
	assert.Zero(t, cfg.Spawner.DifficultyInterval)
}

func TestSimulateSavesBestAtTickLimit(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	kv := storage.NewMemoryKV()

	sum, err := simulate(cfg, kv, nil, 1, 60, 100, autopilot.DefaultLeadTicks)
	require.NoError(t, err)

	v, err := kv.Get(cfg.Score.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(sum.Score), v)
}
