package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/game"
	"github.com/vovakirdan/neon-runner/internal/platform/tui"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up   - Start / Jump
  P/Esc      - Pause / Resume
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start, gentler ramp
  normal - Default pacing
  hard   - Faster start, steeper ramp
  fixed  - No ramp, stays at the starting pace

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The game owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadRunner()
	if err != nil {
		return err
	}

	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rc := runtimeConfig(width, height)

	var kv core.KV
	opts := tui.Options{
		FPS:    rc.TickRate,
		Logger: logger,
		Width:  rc.ScreenW,
		Height: rc.ScreenH,
		Seed:   flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Keep playing; the best score lasts for this session only
		kv = storage.NewMemoryKV()
	} else {
		defer store.Close()
		kv = store
		opts.Recorder = store
	}

	g := game.New(cfg, core.SystemClock(), kv, logger, rc.Seed)
	if err := tui.Run(g, opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
