package checkers

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds     = errors.New("coordinate out of bounds")
	ErrNoPieceAtSquare = errors.New("no piece of the current player at square")
	ErrIllegalMove     = errors.New("illegal move")
	ErrSquareOccupied  = errors.New("square already occupied")
	ErrMatchOver       = errors.New("match is over")
)

// MoveError attaches the operation and coordinate to one of the sentinel errors above.
type MoveError struct {
	Op  string
	X   int
	Y   int
	Err error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s (%d,%d): %v", e.Op, e.X, e.Y, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

func moveErr(op string, x, y int, err error) error {
	return &MoveError{Op: op, X: x, Y: y, Err: err}
}
