// paddle is a terminal paddle-and-ball toy.
//
// A ball drops from above and you slide the paddle along the track to
// keep it off the floor. The simulation runs on its own goroutine at a
// fixed tick rate while the terminal renders published scenes.
//
// Usage:
//
//	paddle                   - Play in the current terminal
//	paddle play              - Same as above
//	paddle serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to custom config YAML
//	--tick <ms>      - Simulation tick interval in milliseconds (default: 10)
//	--seed <value>   - RNG seed for reproducible jitter (0 = time-based)
//	--debug          - Show the debug overlay
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-paddle/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagTick     int
	flagSeed     int64
	flagDebug    bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paddle",
	Short: "A paddle-and-ball toy for your terminal",
	Long: `Paddle is a small physics toy: a ball falls, bounces off a steerable
paddle and is lost when it reaches the floor. Running it without a
subcommand starts a local session.

Controls:
  Left/A     - Steer left
  Right/D    - Steer right
  Space      - Reset the ball
  P          - Pause
  Q/Ctrl+C   - Quit

Examples:
  paddle
  paddle --seed 42 --debug
  paddle --tick 5
  paddle serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagTick, "tick", 0, "Tick interval in milliseconds (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show tick and camera overlay")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the YAML config and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagTick > 0 {
		cfg.Display.TickMillis = flagTick
	}
	if flagDebug {
		cfg.Display.Debug = true
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger builds the process logger from the configured level.
func newLogger(cfg config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "paddle",
	})
}
