// Package notation converts human square names ("a1".."h8") to board coordinates.
// Column letters map to x; row 1 is the highest y, so "a8" is (0,0).
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/park285/checkers/internal/checkers"
)

var ErrBadNotation = errors.New("bad square notation")

// ParseSquare parses a square such as "c3" (case-insensitive).
func ParseSquare(s string) (checkers.Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return checkers.Coord{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	col, row := s[0], s[1]
	if col < 'a' || col > 'z' || row < '0' || row > '9' {
		return checkers.Coord{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}
	c := checkers.Coord{X: int(col - 'a'), Y: checkers.Size - int(row-'0')}
	if !c.InBounds() {
		return checkers.Coord{}, fmt.Errorf("%q: %w", s, checkers.ErrOutOfBounds)
	}
	return c, nil
}

// FormatSquare is the inverse of ParseSquare.
func FormatSquare(c checkers.Coord) string {
	if !c.InBounds() {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'a'+c.X, checkers.Size-c.Y)
}

// ParseMove accepts "c3 d4", "c3-d4", "c3xd4" or "c3d4".
func ParseMove(s string) (from, to checkers.Coord, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '-' || r == 'x' || r == ',' })
	if len(fields) == 1 && len(fields[0]) == 4 {
		fields = []string{fields[0][:2], fields[0][2:]}
	}
	if len(fields) != 2 {
		return from, to, fmt.Errorf("%w: move %q", ErrBadNotation, s)
	}
	if from, err = ParseSquare(fields[0]); err != nil {
		return from, to, err
	}
	if to, err = ParseSquare(fields[1]); err != nil {
		return from, to, err
	}
	return from, to, nil
}

// FormatMove renders a move as "c3-d4", or "c3xe5" for a jump.
func FormatMove(from, to checkers.Coord) string {
	sep := "-"
	if d := from.X - to.X; d == 2 || d == -2 {
		sep = "x"
	}
	return FormatSquare(from) + sep + FormatSquare(to)
}
