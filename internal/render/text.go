// Package render draws board snapshots as text grids and PNG images.
package render

import (
	"fmt"
	"strings"

	"github.com/park285/checkers/internal/checkers"
)

// Text renders the board with column letters on top and row numbers (8 at the top)
// on the left. Men are "d"/"l", kings "D"/"L", empty squares ".".
func Text(s checkers.Snapshot) string {
	lines := make([]string, 0, checkers.Size+1)
	var row strings.Builder
	row.WriteString("   ")
	for x := 0; x < checkers.Size; x++ {
		fmt.Fprintf(&row, "%c   ", 'a'+x)
	}
	lines = append(lines, strings.TrimRight(row.String(), " "))
	for y := 0; y < checkers.Size; y++ {
		row.Reset()
		fmt.Fprintf(&row, "%d ", checkers.Size-y)
		for x := 0; x < checkers.Size; x++ {
			fmt.Fprintf(&row, " %c  ", Glyph(s.At(x, y)))
		}
		lines = append(lines, strings.TrimRight(row.String(), " "))
	}
	return strings.Join(lines, "\n") + "\n"
}

// Glyph returns the single-character symbol for a square.
func Glyph(v checkers.SquareView) rune {
	if !v.Occupied {
		return '.'
	}
	switch {
	case v.Piece == checkers.Dark && v.King:
		return 'D'
	case v.Piece == checkers.Dark:
		return 'd'
	case v.King:
		return 'L'
	default:
		return 'l'
	}
}
