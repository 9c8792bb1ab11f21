package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-runner/internal/autopilot"
	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/game"
	"github.com/vovakirdan/neon-runner/internal/platform/tui"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

var (
	flagSimTicks  int
	flagSimRecord bool
	flagSimLead   float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot play a headless run",
	Long: `Run the game without a terminal, driven by the autopilot on a
simulated clock. The run ends on the first collision or after --ticks
frames, and its summary is printed.

With --record the run is saved to the history and may set a new best.

Examples:
  runner sim
  runner sim --seed 42 --ticks 20000
  runner sim --difficulty hard --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 10000, "Maximum frames to simulate")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the run to the scores database")
	simCmd.Flags().Float64Var(&flagSimLead, "lead", autopilot.DefaultLeadTicks, "Autopilot jump lead in frames")
}

// simulate plays one run on a manual clock advancing 1000/fps ms per frame.
func simulate(cfg config.Runner, kv core.KV, logger *log.Logger, seed int64, fps, maxTicks int, lead float64) (game.Summary, error) {
	if fps <= 0 {
		fps = 60
	}
	frameMS := int64(1000 / fps)

	clock := core.NewManualClock(0)
	g := game.New(cfg, clock.Clock(), kv, logger, seed)
	pilot := autopilot.New(autopilot.Options{LeadTicks: lead, Logger: logger})

	snap := g.Snapshot()
	for snap.Ticks < maxTicks {
		frame, err := pilot.Decide(snap)
		if err != nil {
			return g.Summary(), fmt.Errorf("autopilot: %w", err)
		}
		clock.Advance(frameMS)
		snap = g.Step(frame)
		if snap.State == game.StateGameOver {
			break
		}
	}

	// Stopped at the frame limit: close the run so its best score is kept
	g.Finish()
	return g.Summary(), nil
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadRunner()
	if err != nil {
		return err
	}
	rc := runtimeConfig(0, 0)

	var kv core.KV = storage.NewMemoryKV()
	var store *storage.Store
	if flagSimRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("cannot open scores database: %w", err)
		}
		defer store.Close()
		kv = store
	}

	sum, err := simulate(cfg, kv, logger, rc.Seed, rc.TickRate, flagSimTicks, flagSimLead)
	if err != nil {
		return err
	}

	fmt.Printf("Seed:          %d\n", rc.Seed)
	fmt.Printf("Score:         %d\n", sum.Score)
	fmt.Printf("Distance:      %d\n", sum.Distance)
	fmt.Printf("Bonus:         %d\n", sum.Bonus)
	fmt.Printf("Perfect jumps: %d\n", sum.PerfectJumps)
	fmt.Printf("Best streak:   %d\n", sum.MaxStreak)
	fmt.Printf("Level:         %d\n", sum.Level)
	fmt.Printf("Time:          %.1fs\n", float64(sum.DurationMS)/1000)

	if store != nil && sum.Score > 0 {
		id, err := store.SaveRun(tui.RunFromSummary(sum))
		if err != nil {
			return err
		}
		logger.Info("run recorded", "id", id)
	}
	return nil
}
