package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTickInterval is the time between snake moves.
const DefaultTickInterval = 150 * time.Millisecond

// Ticker is a repeating timer owned by the Controller.
// Start (re)arms it at the given interval and Stop disarms it; each fire must
// end up as one call to Controller.Tick on the controller's goroutine.
type Ticker interface {
	Start(interval time.Duration)
	Stop()
}

// Renderer receives a snapshot after every state change worth drawing.
type Renderer interface {
	Render(snap Snapshot)
}

// Notifier shows a short, self-dismissing message to the player.
type Notifier interface {
	Notify(msg string)
}

// Command is a player-issued control event.
type Command string

const (
	CommandStart  Command = "start"
	CommandPause  Command = "pause" // Toggles between Running and Paused
	CommandQuit   Command = "quit"
	CommandReplay Command = "replay" // Start again from the game-over screen
)

// Messages holds the notification texts.
type Messages struct {
	Paused string
	Quit   string
	Lost   string
	Won    string
}

// DefaultMessages returns the built-in notification texts.
func DefaultMessages() Messages {
	return Messages{
		Paused: "Game paused",
		Quit:   "Game quit",
		Lost:   "You lost",
		Won:    "Board cleared!",
	}
}

// Controller drives a GameState from commands, direction input and ticks.
// It is not safe for concurrent use; all calls must come from one goroutine.
type Controller struct {
	state      *GameState // nil on the start screen
	rng        *rand.Rand // Seeds each new GameState
	ticker     Ticker
	renderer   Renderer
	notifier   Notifier
	logger     *log.Logger
	interval   time.Duration
	messages   Messages
	finalScore int
	commands   map[Command]func()
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithTicker sets the timer that produces ticks.
func WithTicker(t Ticker) ControllerOption {
	return func(c *Controller) { c.ticker = t }
}

// WithRenderer sets the frame receiver.
func WithRenderer(r Renderer) ControllerOption {
	return func(c *Controller) { c.renderer = r }
}

// WithNotifier sets the toast receiver.
func WithNotifier(n Notifier) ControllerOption {
	return func(c *Controller) { c.notifier = n }
}

// WithLogger sets the logger for phase transitions.
func WithLogger(l *log.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSeed makes food placement reproducible. 0 keeps the time-based seed.
func WithSeed(seed int64) ControllerOption {
	return func(c *Controller) {
		if seed != 0 {
			c.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithTickInterval overrides DefaultTickInterval.
func WithTickInterval(d time.Duration) ControllerOption {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithMessages overrides the notification texts. Empty fields keep the default.
func WithMessages(m Messages) ControllerOption {
	return func(c *Controller) {
		if m.Paused != "" {
			c.messages.Paused = m.Paused
		}
		if m.Quit != "" {
			c.messages.Quit = m.Quit
		}
		if m.Lost != "" {
			c.messages.Lost = m.Lost
		}
		if m.Won != "" {
			c.messages.Won = m.Won
		}
	}
}

// NewController creates a controller on the start screen.
// Collaborators that are not supplied default to no-ops.
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		ticker:   nopTicker{},
		renderer: nopRenderer{},
		notifier: nopNotifier{},
		logger:   log.New(io.Discard),
		interval: DefaultTickInterval,
		messages: DefaultMessages(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.commands = map[Command]func(){
		CommandStart:  c.start,
		CommandReplay: c.start,
		CommandPause:  c.togglePause,
		CommandQuit:   c.quit,
	}
	return c
}

// Dispatch runs the handler for cmd. Commands that make no sense in the
// current phase, and unknown commands, are ignored.
func (c *Controller) Dispatch(cmd Command) {
	handler, ok := c.commands[cmd]
	if !ok {
		c.logger.Debug("unknown command", "command", cmd)
		return
	}
	handler()
}

// Direction forwards a steering request to the game while it is running.
// Reports whether the pending direction changed.
func (c *Controller) Direction(d Direction) bool {
	if c.Phase() != PhaseRunning {
		return false
	}
	return c.state.SetPendingDirection(d)
}

// Tick advances the game by one step. Ticks outside PhaseRunning are ignored.
func (c *Controller) Tick() StepResult {
	if c.Phase() != PhaseRunning {
		return StepResult{Kind: ResultIgnored, Snapshot: c.Snapshot()}
	}

	res := c.state.Step()
	switch res.Kind {
	case ResultTick:
		c.renderer.Render(res.Snapshot)
	case ResultGameOver:
		c.ticker.Stop()
		c.finalScore = res.Snapshot.Score
		c.renderer.Render(res.Snapshot)
		c.logger.Info("game over",
			"score", res.Snapshot.Score,
			"length", len(res.Snapshot.Snake),
			"won", res.Won,
		)
		if res.Won {
			c.notifier.Notify(c.messages.Won)
		} else {
			c.notifier.Notify(c.messages.Lost)
		}
	}
	return res
}

// Phase returns the current phase; PhaseStart before the first game and after quit.
func (c *Controller) Phase() Phase {
	if c.state == nil {
		return PhaseStart
	}
	return c.state.Phase()
}

// FinalScore returns the score of the last finished game.
func (c *Controller) FinalScore() int {
	return c.finalScore
}

// Snapshot returns the current frame. On the start screen it is empty.
func (c *Controller) Snapshot() Snapshot {
	if c.state == nil {
		return Snapshot{Phase: PhaseStart}
	}
	return c.state.Snapshot()
}

func (c *Controller) start() {
	from := c.Phase()
	if from != PhaseStart && from != PhaseGameOver {
		return
	}

	c.state = NewGameState(rand.New(rand.NewSource(c.rng.Int63())))
	c.state.Reset()
	c.finalScore = 0
	c.ticker.Start(c.interval)
	c.logger.Debug("phase change", "from", from, "to", PhaseRunning, "food", c.state.Food())
	c.renderer.Render(c.state.Snapshot())
}

func (c *Controller) togglePause() {
	switch c.Phase() {
	case PhaseRunning:
		c.state.pause()
		c.ticker.Stop()
		c.logger.Debug("phase change", "from", PhaseRunning, "to", PhasePaused)
		c.notifier.Notify(c.messages.Paused)
	case PhasePaused:
		c.state.resume()
		c.ticker.Start(c.interval)
		c.logger.Debug("phase change", "from", PhasePaused, "to", PhaseRunning)
	}
}

func (c *Controller) quit() {
	from := c.Phase()
	if from != PhaseRunning && from != PhasePaused {
		return
	}

	c.ticker.Stop()
	c.state = nil
	c.logger.Debug("phase change", "from", from, "to", PhaseStart)
	c.notifier.Notify(c.messages.Quit)
}

type nopTicker struct{}

func (nopTicker) Start(time.Duration) {}
func (nopTicker) Stop()               {}

type nopRenderer struct{}

func (nopRenderer) Render(Snapshot) {}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}
