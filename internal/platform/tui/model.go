package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

// toastRows is the line above the board reserved for notifications.
const toastRows = 1

// MinSize returns the smallest terminal that shows the whole board and the
// notification line above it.
func MinSize(th snake.Theme) (width, height int) {
	w, h := snake.BoardSize(th)
	return w, h + toastRows
}

// Options configures a game session.
type Options struct {
	Runtime       core.RuntimeConfig
	ToastDuration time.Duration
	Theme         snake.Theme
	Messages      snake.Messages
	Logger        *log.Logger
}

// DefaultOptions returns options matching the built-in config.
func DefaultOptions() Options {
	return Options{
		Runtime:       core.DefaultConfig(),
		ToastDuration: 2 * time.Second,
		Theme:         snake.DefaultTheme(),
		Messages:      snake.DefaultMessages(),
	}
}

// Model is the Bubble Tea model for the snake game. It is the UI shell around
// a snake.Controller: keys become commands, TickMsgs become ticks.
type Model struct {
	ctrl     *snake.Controller
	timer    *tickTimer
	toast    *toaster
	board    *boardRenderer
	keys     *KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model on the start screen.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = 2 * time.Second
	}
	if opts.Theme.CellWidth <= 0 {
		opts.Theme = snake.DefaultTheme()
	}

	timer := newTickTimer()
	toast := newToaster(opts.ToastDuration)
	board := newBoardRenderer(opts.Theme)

	ctrl := snake.NewController(
		snake.WithTicker(timer),
		snake.WithRenderer(board),
		snake.WithNotifier(toast),
		snake.WithLogger(logger),
		snake.WithSeed(opts.Runtime.Seed),
		snake.WithTickInterval(opts.Runtime.TickInterval),
		snake.WithMessages(opts.Messages),
	)

	return Model{
		ctrl:   ctrl,
		timer:  timer,
		toast:  toast,
		board:  board,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Snake")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case toastExpiredMsg:
		m.toast.Expire(msg)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	phase := m.ctrl.Phase()
	m.keys.SetPhase(phase)

	action := m.keys.Action(msg)
	if action != core.ActionNone {
		m.logger.Debug("key", "key", msg.String(), "action", action, "phase", phase)
	}

	switch action {
	case core.ActionExit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionStart:
		if phase == snake.PhaseGameOver {
			m.ctrl.Dispatch(snake.CommandReplay)
		} else {
			m.ctrl.Dispatch(snake.CommandStart)
		}
	case core.ActionPause:
		m.ctrl.Dispatch(snake.CommandPause)
	case core.ActionQuit:
		m.ctrl.Dispatch(snake.CommandQuit)
	default:
		if !action.IsDirectional() {
			break
		}
		if d, ok := directionFor(action); ok {
			m.ctrl.Direction(d)
		}
	}

	m.keys.SetPhase(m.ctrl.Phase())
	return m, m.pendingCmds()
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.timer.Accept(msg) {
		return m, nil
	}

	m.ctrl.Tick()
	m.timer.Rearm(msg.Gen)
	m.keys.SetPhase(m.ctrl.Phase())

	return m, m.pendingCmds()
}

// pendingCmds collects the timers armed by the last controller call.
func (m Model) pendingCmds() tea.Cmd {
	return tea.Batch(m.timer.Cmd(), m.toast.Cmd())
}

// Phase returns the phase of the underlying controller.
func (m Model) Phase() snake.Phase {
	return m.ctrl.Phase()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	minW, minH := MinSize(m.board.theme)
	if m.width > 0 && m.height > 0 && (m.width < minW || m.height < minH) {
		return fmt.Sprintf("Window too small (%dx%d)\nNeed at least %dx%d\n",
			m.width, m.height, minW, minH)
	}

	var body string
	switch m.ctrl.Phase() {
	case snake.PhaseStart:
		body = m.viewStart()
	case snake.PhaseGameOver:
		body = m.viewGameOver()
	default:
		body = m.board.View()
	}

	rows := []string{m.toast.View(), body}
	// The help bar is dropped when it would push the board off screen.
	helpView := subtleStyle.Render(m.help.View(m.keys))
	if m.height <= 0 || lipgloss.Height(body)+toastRows+lipgloss.Height(helpView) <= m.height {
		rows = append(rows, helpView)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, rows...)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewStart() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("S N A K E"))
	b.WriteString("\n\n")
	b.WriteString("Eat the food, grow longer,\n")
	b.WriteString("don't hit the walls or yourself.\n\n")
	b.WriteString(subtleStyle.Render("Press Enter to start"))
	return b.String()
}

func (m Model) viewGameOver() string {
	var b strings.Builder
	b.WriteString(gameOverStyle.Render("G A M E   O V E R"))
	b.WriteString("\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Final score: %d", m.ctrl.FinalScore())))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("Length: %d", len(m.board.Last().Snake))))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("Press Enter to play again"))
	return b.String()
}

// Run starts the Bubble Tea program and blocks until the player exits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
