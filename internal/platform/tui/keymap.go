package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// KeyMap defines the key bindings of the game.
// Which bindings are active depends on the game phase, see SetPhase.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	Pause key.Binding
	Quit  key.Binding
	Exit  key.Binding
	Help  key.Binding

	quitExits bool // On menu screens Quit leaves the program
}

// DefaultKeyMap returns default key bindings, set up for the start screen.
func DefaultKeyMap() *KeyMap {
	k := &KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p/space", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
	k.SetPhase(snake.PhaseStart)
	return k
}

// SetPhase enables the bindings that make sense in phase p.
func (k *KeyMap) SetPhase(p snake.Phase) {
	inGame := p == snake.PhaseRunning || p == snake.PhasePaused

	k.Up.SetEnabled(p == snake.PhaseRunning)
	k.Down.SetEnabled(p == snake.PhaseRunning)
	k.Left.SetEnabled(p == snake.PhaseRunning)
	k.Right.SetEnabled(p == snake.PhaseRunning)
	k.Pause.SetEnabled(inGame)
	k.Start.SetEnabled(!inGame)
	k.quitExits = !inGame

	switch p {
	case snake.PhaseGameOver:
		k.Start.SetHelp("enter/r", "replay")
	default:
		k.Start.SetHelp("enter", "start")
	}
	if p == snake.PhasePaused {
		k.Pause.SetHelp("p/space", "resume")
	} else {
		k.Pause.SetHelp("p/space", "pause")
	}
	if k.quitExits {
		k.Quit.SetHelp("q/esc", "exit")
	} else {
		k.Quit.SetHelp("q/esc", "quit game")
	}
}

// Action translates a key message into a game action for the current phase.
func (k *KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Exit):
		return core.ActionExit
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Quit):
		if k.quitExits {
			return core.ActionExit
		}
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Pause, k.Quit, k.Exit},
	}
}

// directionFor maps a directional action to a snake direction.
func directionFor(a core.Action) (snake.Direction, bool) {
	switch a {
	case core.ActionUp:
		return snake.DirUp, true
	case core.ActionDown:
		return snake.DirDown, true
	case core.ActionLeft:
		return snake.DirLeft, true
	case core.ActionRight:
		return snake.DirRight, true
	}
	return 0, false
}
