// snake is a terminal Snake game.
//
// Usage:
//
//	snake play               - Play in the terminal
//	snake sim --moves <m>    - Run a scripted game without a terminal
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Path to a config YAML
//	--seed <value>     - Set RNG seed for reproducible food placement
//	--tick <duration>  - Override the time between moves
//	--log-file <path>  - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagTick    time.Duration
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal version of the classic game: steer the snake,
eat the food, grow longer and avoid the walls and your own body.

Available commands:
  play     - Play the game
  sim      - Run a scripted game and print the final board
  config   - Print the effective configuration

Examples:
  snake play
  snake play --seed 42 --tick 100ms
  snake sim --seed 1 --moves "RRRRDDDDLL"
  snake config --config ./my-snake.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then time)")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Time between moves (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagTick != 0 {
		cfg.TickInterval = flagTick
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger creates the logger for a command. When --log-file is set logs go
// there, otherwise to fallback. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closer := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
