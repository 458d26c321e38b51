// Package checkers implements the rules engine: board, pieces, players and the match
// state machine. It performs no I/O and does not log.
package checkers

// Size is the number of squares along each board axis.
const Size = 8

// Color identifies a side and, separately, the checkerboard color of a square.
type Color uint8

const (
	Light Color = iota
	Dark
)

func (c Color) String() string {
	switch c {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unknown"
	}
}

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == Light {
		return Dark
	}
	return Light
}

// Coord is a zero-based board coordinate.
type Coord struct {
	X int
	Y int
}

// InBounds reports whether c lies on the 8x8 grid.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

// State is the lifecycle of a match.
type State uint8

const (
	InProgress State = iota
	Win
	Draw
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "IN_PROGRESS"
	case Win:
		return "WIN"
	case Draw:
		return "DRAW"
	default:
		return "UNKNOWN"
	}
}

// Outcome is the game outcome signal. Winner is meaningful only when State is Win.
type Outcome struct {
	State  State
	Winner Color
}

// Terminal reports whether the outcome ends the match.
func (o Outcome) Terminal() bool { return o.State != InProgress }

func (o Outcome) String() string {
	if o.State == Win {
		return "WIN(" + o.Winner.String() + ")"
	}
	return o.State.String()
}

// Placement describes a piece for NewCustomMatch.
type Placement struct {
	X     int
	Y     int
	Color Color
	King  bool
}

// MoveResult describes an applied move.
type MoveResult struct {
	From     Coord
	To       Coord
	Captured *Piece
	Promoted bool
	Outcome  Outcome
}

// absDiff returns |a-b|.
func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
