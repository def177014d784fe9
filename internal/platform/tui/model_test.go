package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	opts := DefaultOptions()
	opts.Runtime.Seed = 42
	opts.Runtime.ScreenW = 0
	opts.Runtime.ScreenH = 0
	return NewModel(opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelStartScreen(t *testing.T) {
	m := newTestModel(t)

	if m.Phase() != snake.PhaseStart {
		t.Fatalf("Phase() = %v, expected start", m.Phase())
	}
	if !strings.Contains(m.View(), "S N A K E") {
		t.Errorf("start view missing title:\n%s", m.View())
	}
	if m.Init() == nil {
		t.Error("Init() should set the window title")
	}
}

func TestModelStartAndTick(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Phase() != snake.PhaseRunning {
		t.Fatalf("Phase() = %v after enter, expected running", m.Phase())
	}
	if cmd == nil {
		t.Fatal("start did not schedule a tick")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Errorf("game view missing HUD:\n%s", m.View())
	}

	m, cmd = update(t, m, TickMsg{Gen: m.timer.gen})
	if cmd == nil {
		t.Error("tick was not rearmed")
	}
	if head, _ := m.board.Last().Head(); head != (snake.Cell{X: 6, Y: 10}) {
		t.Errorf("head = %v after one tick, expected (6,10)", head)
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	stale := TickMsg{Gen: m.timer.gen}

	// Pause and resume start a new timer run.
	m, _ = update(t, m, runeKey("p"))
	m, _ = update(t, m, runeKey("p"))
	if m.Phase() != snake.PhaseRunning {
		t.Fatalf("Phase() = %v, expected running", m.Phase())
	}

	before := m.board.Last()
	m, cmd := update(t, m, stale)
	if cmd != nil {
		t.Error("stale tick scheduled another tick")
	}
	if head, _ := m.board.Last().Head(); head != (snake.Cell{X: 5, Y: 10}) || m.board.Last().Score != before.Score {
		t.Errorf("stale tick moved the snake to %v", head)
	}
}

func TestModelPauseShowsToast(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, runeKey("p"))
	if m.Phase() != snake.PhasePaused {
		t.Fatalf("Phase() = %v, expected paused", m.Phase())
	}
	if cmd == nil {
		t.Fatal("pause did not schedule the toast expiry")
	}
	view := m.View()
	if !strings.Contains(view, "Game paused") || !strings.Contains(view, "PAUSED") {
		t.Errorf("paused view missing toast or status:\n%s", view)
	}

	// Arrows are ignored while paused.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.ctrl.Snapshot().Direction != snake.DirRight {
		t.Error("direction changed while paused")
	}

	m, _ = update(t, m, toastExpiredMsg{id: m.toast.id})
	if strings.Contains(m.View(), "Game paused") {
		t.Error("toast still visible after expiry")
	}
}

func TestModelQuitReturnsToStart(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, runeKey("q"))
	if m.Phase() != snake.PhaseStart {
		t.Fatalf("Phase() = %v after q, expected start", m.Phase())
	}
	if m.quitting {
		t.Fatal("q during a game should not exit the program")
	}
	if !strings.Contains(m.View(), "Game quit") {
		t.Errorf("quit toast missing:\n%s", m.View())
	}

	// On the start screen q leaves the program.
	m, cmd := update(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q on the start screen should exit")
	}
	if m.View() != "" {
		t.Error("view should be empty while quitting")
	}
}

func TestModelGameOverAndReplay(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})

	for i := 0; i < 2*snake.GridSize && m.Phase() == snake.PhaseRunning; i++ {
		m, _ = update(t, m, TickMsg{Gen: m.timer.gen})
	}
	if m.Phase() != snake.PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game_over", m.Phase())
	}
	if m.timer.Running() {
		t.Error("timer still running after game over")
	}
	view := m.View()
	if !strings.Contains(view, "Final score") || !strings.Contains(view, "You lost") {
		t.Errorf("game-over view incomplete:\n%s", view)
	}

	m, _ = update(t, m, runeKey("r"))
	if m.Phase() != snake.PhaseRunning {
		t.Fatalf("Phase() = %v after replay, expected running", m.Phase())
	}
	if m.ctrl.Snapshot().Score != 0 {
		t.Error("replay kept the old score")
	}
}

func TestModelExitFromGame(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting || cmd == nil {
		t.Error("ctrl+c should exit")
	}
}

func TestModelWindowTooSmall(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if !strings.Contains(m.View(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", m.View())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if strings.Contains(m.View(), "Window too small") {
		t.Error("size warning shown on a large window")
	}

	w, h := MinSize(snake.DefaultTheme())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: w, Height: h - 1})
	if !strings.Contains(m.View(), "Window too small") {
		t.Errorf("expected size warning at %dx%d", w, h-1)
	}
}

func TestModelFitsStandardTerminal(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantHelp      bool
	}{
		{"80x24", 80, 24, false},
		{"minimum", 42, 24, false},
		{"roomy", 100, 40, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Runtime.Seed = 5
			opts.Runtime.ScreenW = tc.width
			opts.Runtime.ScreenH = tc.height
			m := NewModel(opts)

			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			m, _ = update(t, m, runeKey("p"))

			view := m.View()
			if got := lipgloss.Height(view); got > tc.height {
				t.Fatalf("view is %d rows, terminal has %d", got, tc.height)
			}
			for _, want := range []string{"Game paused", "Score: 0", "PAUSED"} {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q:\n%s", want, view)
				}
			}
			if got := strings.Contains(view, "resume"); got != tc.wantHelp {
				t.Errorf("help bar shown = %v, expected %v", got, tc.wantHelp)
			}
		})
	}
}

func TestModelLogsKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	opts := DefaultOptions()
	opts.Logger = logger
	m := NewModel(opts)
	update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.Contains(buf.String(), "key") || !strings.Contains(buf.String(), "phase change") {
		t.Errorf("expected key and phase logs, got %q", buf.String())
	}
}
