package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of rows above the board.
const hudHeight = 1

// Theme controls glyphs, colors and horizontal scale of the board.
type Theme struct {
	CellWidth   int // Terminal columns per grid cell
	Head        rune
	Body        rune
	Food        rune
	Empty       rune
	HeadColor   core.Color
	BodyColor   core.Color
	FoodColor   core.Color
	BorderColor core.Color
}

// DefaultTheme returns the built-in look.
func DefaultTheme() Theme {
	return Theme{
		CellWidth:   2,
		Head:        '@',
		Body:        'o',
		Food:        '*',
		Empty:       '·',
		HeadColor:   core.ColorBrightGreen,
		BodyColor:   core.ColorGreen,
		FoodColor:   core.ColorBrightRed,
		BorderColor: core.ColorGray,
	}
}

// ThemeFromConfig converts a validated theme config.
func ThemeFromConfig(tc config.ThemeConfig) (Theme, error) {
	th := Theme{
		CellWidth: tc.CellWidth,
		Head:      firstRune(tc.Head),
		Body:      firstRune(tc.Body),
		Food:      firstRune(tc.Food),
		Empty:     firstRune(tc.Empty),
	}

	colors := []struct {
		name string
		dst  *core.Color
	}{
		{tc.HeadColor, &th.HeadColor},
		{tc.BodyColor, &th.BodyColor},
		{tc.FoodColor, &th.FoodColor},
		{tc.BorderColor, &th.BorderColor},
	}
	for _, c := range colors {
		parsed, ok := core.ParseColor(c.name)
		if !ok {
			return Theme{}, fmt.Errorf("snake: unknown color %q: %w", c.name, config.ErrInvalid)
		}
		*c.dst = parsed
	}
	return th, nil
}

// MessagesFromConfig converts notification texts from the config file.
func MessagesFromConfig(mc config.MessagesConfig) Messages {
	return Messages{
		Paused: mc.Paused,
		Quit:   mc.Quit,
		Lost:   mc.Lost,
		Won:    mc.Won,
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// BoardSize returns the screen size needed by Paint: the HUD line plus the
// bordered board.
func BoardSize(th Theme) (width, height int) {
	return GridSize*th.CellWidth + 2, GridSize + 2 + hudHeight
}

// Paint draws the HUD and the board at the top-left of dst. The background is
// drawn first, then the snake from tail to head, then the food. The HUD shows
// the score, the length and a PAUSED marker.
func Paint(dst *core.Screen, snap Snapshot, th Theme) {
	w, h := BoardSize(th)

	dst.DrawText(0, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightYellow)
	if len(snap.Snake) > 0 {
		length := fmt.Sprintf("Length: %d", len(snap.Snake))
		dst.DrawText(w-len(length), 0, length, core.ColorGray)
	}

	frame := core.NewRect(0, hudHeight, w, h-hudHeight)
	dst.DrawBox(frame, th.BorderColor)
	dst.DrawRect(core.NewRect(1, hudHeight+1, w-2, GridSize), th.Empty, core.ColorGray)

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		glyph, color := th.Body, th.BodyColor
		if i == 0 {
			glyph, color = th.Head, th.HeadColor
		}
		paintCell(dst, snap.Snake[i], glyph, color, th)
	}

	if snap.Phase == PhasePaused {
		dst.DrawTextCentered(0, "PAUSED", core.ColorBrightWhite)
	}

	// After a full-board win the last food sits under the head.
	if snap.Phase != PhaseStart && !onSnake(snap.Snake, snap.Food) {
		paintCell(dst, snap.Food, th.Food, th.FoodColor, th)
	}
}

func onSnake(body []Cell, c Cell) bool {
	for _, seg := range body {
		if seg == c {
			return true
		}
	}
	return false
}

// paintCell fills one grid cell, CellWidth columns wide.
func paintCell(dst *core.Screen, c Cell, glyph rune, color core.Color, th Theme) {
	if !board.Contains(c.X, c.Y) {
		return
	}
	x, y := CellOrigin(c, th)
	for i := 0; i < th.CellWidth; i++ {
		dst.SetColor(x+i, y, glyph, color)
	}
}

// CellOrigin returns the screen position of the first column of grid cell c.
func CellOrigin(c Cell, th Theme) (x, y int) {
	return 1 + c.X*th.CellWidth, hudHeight + 1 + c.Y
}
