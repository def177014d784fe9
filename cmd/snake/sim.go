package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagMoves string
	flagTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game and print the final board",
	Long: `Play a game without a terminal UI. The move script has one character
per tick: U, D, L or R steers before the tick, '.' keeps going straight.
Whitespace is ignored. The game runs until the script and --ticks are used up
or the game ends. With a fixed --seed the output is reproducible.

Examples:
  snake sim --seed 1 --moves "....UUUU....LLLL"
  snake sim --seed 1 --moves "D" --ticks 30 -v`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Move script: U/D/L/R/. per tick")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Number of ticks to run (0 = length of the script)")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme, err := snake.ThemeFromConfig(cfg.Theme)
	if err != nil {
		return err
	}
	moves, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}
	ticks := flagTicks
	if ticks <= 0 {
		ticks = len(moves)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("simulating", "seed", seed, "ticks", ticks)

	s := newSimulation(seed, logger)
	res := s.run(moves, ticks)

	screen := core.NewScreen(snake.BoardSize(theme))
	snake.Paint(screen, res.Snapshot, theme)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, screen.String())
	fmt.Fprintf(out, "ticks: %d  score: %d  length: %d  phase: %s\n",
		res.Ticks, res.Snapshot.Score, len(res.Snapshot.Snake), res.Snapshot.Phase)
	return nil
}

// move is one tick of a move script.
type move struct {
	dir  snake.Direction
	turn bool // false means keep the current direction
}

// parseMoves decodes a move script.
func parseMoves(script string) ([]move, error) {
	var moves []move
	for i, r := range script {
		switch r {
		case 'U', 'u':
			moves = append(moves, move{dir: snake.DirUp, turn: true})
		case 'D', 'd':
			moves = append(moves, move{dir: snake.DirDown, turn: true})
		case 'L', 'l':
			moves = append(moves, move{dir: snake.DirLeft, turn: true})
		case 'R', 'r':
			moves = append(moves, move{dir: snake.DirRight, turn: true})
		case '.':
			moves = append(moves, move{})
		default:
			if strings.TrimSpace(string(r)) == "" {
				continue
			}
			return nil, fmt.Errorf("invalid move %q at offset %d", r, i)
		}
	}
	return moves, nil
}

// manualTicker implements snake.Ticker for a loop that ticks by hand.
type manualTicker struct {
	running bool
}

func (t *manualTicker) Start(time.Duration) { t.running = true }
func (t *manualTicker) Stop()               { t.running = false }

// frameRecorder implements snake.Renderer by keeping the latest frame.
type frameRecorder struct {
	last snake.Snapshot
}

func (r *frameRecorder) Render(snap snake.Snapshot) {
	r.last = snap
}

// logNotifier implements snake.Notifier by logging each toast.
type logNotifier struct {
	logger *log.Logger
}

func (n logNotifier) Notify(msg string) {
	n.logger.Info("toast", "msg", msg)
}

// simulation is a controller wired to in-memory collaborators.
type simulation struct {
	ctrl   *snake.Controller
	ticker *manualTicker
	frames *frameRecorder
}

type simResult struct {
	Ticks    int
	Snapshot snake.Snapshot
}

func newSimulation(seed int64, logger *log.Logger) *simulation {
	s := &simulation{
		ticker: &manualTicker{},
		frames: &frameRecorder{},
	}
	s.ctrl = snake.NewController(
		snake.WithSeed(seed),
		snake.WithTicker(s.ticker),
		snake.WithRenderer(s.frames),
		snake.WithNotifier(logNotifier{logger: logger}),
		snake.WithLogger(logger),
	)
	return s
}

// run starts a game and ticks it while the ticker is armed.
func (s *simulation) run(moves []move, ticks int) simResult {
	s.ctrl.Dispatch(snake.CommandStart)

	n := 0
	for n < ticks && s.ticker.running {
		if n < len(moves) && moves[n].turn {
			s.ctrl.Direction(moves[n].dir)
		}
		s.ctrl.Tick()
		n++
	}
	return simResult{Ticks: n, Snapshot: s.frames.last}
}
