package snake

// Snapshot captures everything a renderer needs to draw one frame.
// It shares no memory with the GameState it came from.
type Snapshot struct {
	Snake     []Cell // Head first
	Food      Cell
	Score     int
	Direction Direction
	Phase     Phase
}

// Head returns the first snake segment, or false for an empty snapshot.
func (s Snapshot) Head() (Cell, bool) {
	if len(s.Snake) == 0 {
		return Cell{}, false
	}
	return s.Snake[0], true
}

// Snapshot returns the current state for rendering and determinism checks.
func (s *GameState) Snapshot() Snapshot {
	return Snapshot{
		Snake:     s.Snake(),
		Food:      s.food,
		Score:     s.score,
		Direction: s.direction,
		Phase:     s.phase,
	}
}
