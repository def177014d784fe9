// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, timers and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the timer run that scheduled it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickTimer implements snake.Ticker on top of tea.Tick.
// A tea.Tick cannot be cancelled once issued, so every Start and Stop bumps
// the generation and ticks from an older generation are dropped on arrival.
type tickTimer struct {
	gen      uint64
	interval time.Duration
	running  bool
	pending  bool // A tick command must be issued by the next Cmd call
}

func newTickTimer() *tickTimer {
	return &tickTimer{}
}

// Start arms the timer. The first tick fires one interval after the command
// returned by Cmd is run.
func (t *tickTimer) Start(interval time.Duration) {
	t.gen++
	t.interval = interval
	t.running = true
	t.pending = true
}

// Stop disarms the timer; ticks already in flight are ignored.
func (t *tickTimer) Stop() {
	t.gen++
	t.running = false
	t.pending = false
}

// Running reports whether the timer is armed.
func (t *tickTimer) Running() bool {
	return t.running
}

// Accept reports whether msg belongs to the current run.
func (t *tickTimer) Accept(msg TickMsg) bool {
	return t.running && msg.Gen == t.gen
}

// Rearm schedules the next tick of run gen, unless the run ended meanwhile.
func (t *tickTimer) Rearm(gen uint64) {
	if t.running && gen == t.gen {
		t.pending = true
	}
}

// Cmd returns the tea.Tick command for a pending tick, or nil.
func (t *tickTimer) Cmd() tea.Cmd {
	if !t.pending {
		return nil
	}
	t.pending = false
	gen := t.gen
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: now}
	})
}
