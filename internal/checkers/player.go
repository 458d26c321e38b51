package checkers

import "sort"

// Player owns the set of its live pieces.
type Player struct {
	color  Color
	pieces map[*Piece]struct{}
}

func newPlayer(color Color) *Player {
	return &Player{color: color, pieces: make(map[*Piece]struct{})}
}

func (p *Player) Color() Color { return p.color }

// Len returns the number of live pieces.
func (p *Player) Len() int { return len(p.pieces) }

// Owns reports whether piece is in the player's live set.
func (p *Player) Owns(piece *Piece) bool {
	_, ok := p.pieces[piece]
	return ok
}

// Pieces returns the live pieces ordered by row, then column.
func (p *Player) Pieces() []*Piece {
	out := make([]*Piece, 0, len(p.pieces))
	for piece := range p.pieces {
		out = append(out, piece)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].y != out[j].y {
			return out[i].y < out[j].y
		}
		return out[i].x < out[j].x
	})
	return out
}

func (p *Player) add(piece *Piece) { p.pieces[piece] = struct{}{} }

// remove drops a captured piece; it is never re-added.
func (p *Player) remove(piece *Piece) {
	piece.alive = false
	delete(p.pieces, piece)
}
