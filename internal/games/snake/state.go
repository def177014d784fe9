// Package snake implements the Snake game: a pure GameState that advances one
// cell per tick, and a Controller that owns the state machine around it.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GridSize is the width and height of the square board in cells.
const GridSize = 20

// board covers every legal cell.
var board = core.NewRect(0, 0, GridSize, GridSize)

// startBody is the canonical starting snake, head first.
var startBody = []Cell{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}

// Cell is a position on the board.
type Cell struct {
	X, Y int
}

// Add returns the cell translated by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the direction pointing the other way on the same axis.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the one-cell offset for a move in this direction.
func (d Direction) Delta() Cell {
	switch d {
	case DirUp:
		return Cell{X: 0, Y: -1}
	case DirDown:
		return Cell{X: 0, Y: 1}
	case DirLeft:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{X: 1, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Phase is the coarse state of a game.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ResultKind tells what a Step did.
type ResultKind int

const (
	ResultIgnored  ResultKind = iota // Step called outside PhaseRunning
	ResultTick                       // Snake moved
	ResultGameOver                   // Snake crashed (or filled the board)
)

// StepResult is returned by GameState.Step after each tick.
type StepResult struct {
	Kind     ResultKind
	Snapshot Snapshot
	Won      bool // Game ended because no free cell was left for food
}

// GameState holds one game: snake body, direction, food, score and phase.
// It performs no I/O.
type GameState struct {
	rng       *rand.Rand
	snake     []Cell // Head at index 0
	direction Direction
	pending   Direction // Applied at the start of the next Step
	food      Cell
	score     int
	phase     Phase
}

// NewGameState creates a game in PhaseStart. A nil rng uses a time-based seed.
// Call Reset to begin playing.
func NewGameState(rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GameState{
		rng:       rng,
		direction: DirRight,
		pending:   DirRight,
		phase:     PhaseStart,
	}
}

// Reset puts the snake at its starting position, clears the score and places food.
func (s *GameState) Reset() {
	s.snake = append(make([]Cell, 0, 16), startBody...)
	s.direction = DirRight
	s.pending = DirRight
	s.score = 0
	s.phase = PhaseRunning
	s.PlaceFood()
}

// SetPendingDirection requests a direction for the next Step.
// A request for the exact opposite of the current (last applied) direction is
// ignored. Reports whether the request was accepted.
func (s *GameState) SetPendingDirection(d Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// Step advances the game by one tick. It does nothing unless the phase is Running.
func (s *GameState) Step() StepResult {
	if s.phase != PhaseRunning {
		return StepResult{Kind: ResultIgnored, Snapshot: s.Snapshot()}
	}

	s.direction = s.pending
	head := s.snake[0].Add(s.direction.Delta())

	if s.Collides(head) {
		s.phase = PhaseGameOver
		return StepResult{Kind: ResultGameOver, Snapshot: s.Snapshot()}
	}

	s.snake = append(s.snake, Cell{})
	copy(s.snake[1:], s.snake)
	s.snake[0] = head

	if head == s.food {
		s.score++
		if !s.PlaceFood() {
			s.phase = PhaseGameOver
			return StepResult{Kind: ResultGameOver, Snapshot: s.Snapshot(), Won: true}
		}
	} else {
		s.snake = s.snake[:len(s.snake)-1]
	}

	return StepResult{Kind: ResultTick, Snapshot: s.Snapshot()}
}

// PlaceFood moves the food to a uniformly random cell not covered by the snake.
// It returns false, leaving the food where it was, when the snake covers the
// whole board.
func (s *GameState) PlaceFood() bool {
	if len(s.snake) >= board.Area() {
		return false
	}
	for {
		c := Cell{X: s.rng.Intn(GridSize), Y: s.rng.Intn(GridSize)}
		if !s.occupied(c) {
			s.food = c
			return true
		}
	}
}

// Collides reports whether a head moved to c would hit a wall or the current
// body. The tail counts, since it has not moved yet.
func (s *GameState) Collides(c Cell) bool {
	return !board.Contains(c.X, c.Y) || s.occupied(c)
}

func (s *GameState) occupied(c Cell) bool {
	for _, seg := range s.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// pause and resume are driven by the Controller.
func (s *GameState) pause() {
	if s.phase == PhaseRunning {
		s.phase = PhasePaused
	}
}

func (s *GameState) resume() {
	if s.phase == PhasePaused {
		s.phase = PhaseRunning
	}
}

// Phase returns the current phase.
func (s *GameState) Phase() Phase { return s.phase }

// Score returns the number of food items eaten.
func (s *GameState) Score() int { return s.score }

// Direction returns the last applied direction.
func (s *GameState) Direction() Direction { return s.direction }

// PendingDirection returns the direction the next Step will apply.
func (s *GameState) PendingDirection() Direction { return s.pending }

// Food returns the food position.
func (s *GameState) Food() Cell { return s.food }

// Snake returns a copy of the body, head first.
func (s *GameState) Snake() []Cell {
	return append([]Cell(nil), s.snake...)
}
