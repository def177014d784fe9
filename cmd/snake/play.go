package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Enter        - Start (or replay after game over)
  Arrows/WASD  - Steer
  P/Space      - Pause and resume
  Q/Esc        - Quit the game (exit on the start screen)
  Ctrl+C       - Exit

Examples:
  snake play
  snake play --seed 7
  snake play --tick 90ms --log-file snake.log -v`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	theme, err := snake.ThemeFromConfig(cfg.Theme)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	minW, minH := tui.MinSize(theme)
	if width < minW || height < minH {
		return fmt.Errorf("terminal is %dx%d, the game needs at least %dx%d", width, height, minW, minH)
	}

	// The terminal belongs to the TUI, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting", "seed", cfg.Seed, "tick", cfg.TickInterval, "size", fmt.Sprintf("%dx%d", width, height))

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:      width,
			ScreenH:      height,
			TickInterval: cfg.TickInterval,
			Seed:         cfg.Seed,
		},
		ToastDuration: cfg.ToastDuration,
		Theme:         theme,
		Messages:      snake.MessagesFromConfig(cfg.Messages),
		Logger:        logger,
	}
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
