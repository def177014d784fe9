// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// ErrInvalid is returned (wrapped) when a configuration value is out of range.
var ErrInvalid = errors.New("invalid config")

// Config contains all tunable settings of the game.
type Config struct {
	TickInterval  time.Duration  `yaml:"tick_interval"`  // Time between snake moves
	ToastDuration time.Duration  `yaml:"toast_duration"` // How long notifications stay visible
	Seed          int64          `yaml:"seed"`           // 0 = random based on time
	Theme         ThemeConfig    `yaml:"theme"`
	Messages      MessagesConfig `yaml:"messages"`
}

// ThemeConfig defines how the board is drawn in the terminal.
type ThemeConfig struct {
	CellWidth   int    `yaml:"cell_width"` // Terminal columns per grid cell
	Head        string `yaml:"head"`
	Body        string `yaml:"body"`
	Food        string `yaml:"food"`
	Empty       string `yaml:"empty"`
	HeadColor   string `yaml:"head_color"`
	BodyColor   string `yaml:"body_color"`
	FoodColor   string `yaml:"food_color"`
	BorderColor string `yaml:"border_color"`
}

// MessagesConfig holds the notification texts shown to the player.
type MessagesConfig struct {
	Paused string `yaml:"paused"`
	Quit   string `yaml:"quit"`
	Lost   string `yaml:"lost"`
	Won    string `yaml:"won"`
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("config: tick_interval must be positive, got %s: %w", c.TickInterval, ErrInvalid)
	}
	if c.ToastDuration <= 0 {
		return fmt.Errorf("config: toast_duration must be positive, got %s: %w", c.ToastDuration, ErrInvalid)
	}
	if c.Theme.CellWidth < 1 || c.Theme.CellWidth > 4 {
		return fmt.Errorf("config: theme.cell_width must be in 1..4, got %d: %w", c.Theme.CellWidth, ErrInvalid)
	}

	glyphs := map[string]string{
		"head":  c.Theme.Head,
		"body":  c.Theme.Body,
		"food":  c.Theme.Food,
		"empty": c.Theme.Empty,
	}
	for name, g := range glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: theme.%s must be a single character, got %q: %w", name, g, ErrInvalid)
		}
	}
	return nil
}
