// runner is Neon Runner: an endless runner for the terminal.
//
// Usage:
//
//	runner play     - Play in the local terminal
//	runner sim      - Let the autopilot play headless and print the result
//	runner scores   - Show the best runs and statistics
//	runner serve    - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacles
//	--db <path>           - Set database path (default: ~/.neon-runner/runner.db)
//	--config <path>       - Use a custom runner YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Neon Runner - jump the obstacles, chain perfect jumps",
	Long: `Neon Runner is an endless runner played in the terminal.

Obstacles scroll in from the right and speed up over time. Jump over
them; clearing an obstacle by a narrow margin is a perfect jump, and
chains of perfect jumps earn growing bonus points.

Available commands:
  play     - Play in your terminal
  sim      - Watch the autopilot play headless
  scores   - View the best runs
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --difficulty hard
  runner sim --seed 42 --ticks 5000
  runner scores
  runner serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.neon-runner/runner.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
