package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow - steer up
	ActionDown         // S, J, Down arrow - steer down
	ActionLeft         // A, H, Left arrow - steer left
	ActionRight        // D, L, Right arrow - steer right
	ActionStart        // Enter, R - start or replay a game
	ActionPause        // P, Space - pause/unpause
	ActionQuit         // Q, Esc - abandon the game and return to the start screen
	ActionExit         // Ctrl+C - exit the program
	ActionHelp         // ? - toggle full help
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	case ActionExit:
		return "Exit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	return a >= ActionUp && a <= ActionRight
}
