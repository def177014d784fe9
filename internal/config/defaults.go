package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickInterval:  150 * time.Millisecond,
		ToastDuration: 2 * time.Second,
		Theme: ThemeConfig{
			CellWidth:   2,
			Head:        "@",
			Body:        "o",
			Food:        "*",
			Empty:       "·",
			HeadColor:   "bright_green",
			BodyColor:   "green",
			FoodColor:   "bright_red",
			BorderColor: "gray",
		},
		Messages: MessagesConfig{
			Paused: "Game paused",
			Quit:   "Game quit",
			Lost:   "You lost",
			Won:    "Board cleared!",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
