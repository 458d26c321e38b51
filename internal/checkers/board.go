package checkers

// Board is the 8x8 grid of squares indexed by (x,y).
type Board struct {
	squares [Size][Size]Square
}

// NewBoard returns an empty board with checkerboard colors assigned.
func NewBoard() *Board {
	b := &Board{}
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			b.squares[x][y] = Square{color: squareColor(x, y)}
		}
	}
	return b
}

// InBounds reports whether (x,y) is on the board.
func (b *Board) InBounds(x, y int) bool {
	return Coord{X: x, Y: y}.InBounds()
}

// Square returns a copy of the square at (x,y).
func (b *Board) Square(x, y int) (Square, bool) {
	if !b.InBounds(x, y) {
		return Square{}, false
	}
	return b.squares[x][y], true
}

// PieceAt returns the occupant at (x,y), or nil.
func (b *Board) PieceAt(x, y int) *Piece {
	if !b.InBounds(x, y) {
		return nil
	}
	return b.squares[x][y].occupant
}

// PlacePiece binds p to the empty square at (x,y) and moves p there.
func (b *Board) PlacePiece(x, y int, p *Piece) error {
	if !b.InBounds(x, y) {
		return moveErr("place", x, y, ErrOutOfBounds)
	}
	sq := &b.squares[x][y]
	if !sq.IsEmpty() {
		return moveErr("place", x, y, ErrSquareOccupied)
	}
	p.moveTo(x, y)
	sq.place(p)
	return nil
}

// RemovePiece clears the square at (x,y) and returns its former occupant.
// The piece stays alive; only a capture ends a piece.
func (b *Board) RemovePiece(x, y int) (*Piece, error) {
	if !b.InBounds(x, y) {
		return nil, moveErr("remove", x, y, ErrOutOfBounds)
	}
	sq := &b.squares[x][y]
	if sq.IsEmpty() {
		return nil, moveErr("remove", x, y, ErrNoPieceAtSquare)
	}
	p := sq.occupant
	sq.clear()
	return p, nil
}

// IsMoveLegal is read-only. A move is a single diagonal step in any direction, or a
// two-square diagonal jump over an opposing piece onto an empty square.
func (b *Board) IsMoveLegal(p *Piece, destX, destY int) bool {
	if p == nil || !b.InBounds(destX, destY) {
		return false
	}
	if !b.squares[destX][destY].IsEmpty() {
		return false
	}
	dx := absDiff(destX, p.x)
	dy := absDiff(destY, p.y)
	switch {
	case dx == 1 && dy == 1:
		return true
	case dx == 2 && dy == 2:
		mid := b.squares[(p.x+destX)/2][(p.y+destY)/2].occupant
		return mid != nil && mid.color != p.color
	default:
		return false
	}
}

// ApplyMove moves p to (destX,destY), removing a jumped piece from its owner.
// Legality is not re-checked: callers must gate it with IsMoveLegal. The destination
// precondition is verified before anything is mutated.
func (b *Board) ApplyMove(p *Piece, destX, destY int, light, dark *Player) (*Piece, error) {
	if !b.InBounds(destX, destY) {
		return nil, moveErr("apply", destX, destY, ErrOutOfBounds)
	}
	if !b.squares[destX][destY].IsEmpty() {
		return nil, moveErr("apply", destX, destY, ErrSquareOccupied)
	}

	var captured *Piece
	if absDiff(destX, p.x) == 2 && absDiff(destY, p.y) == 2 {
		mid := &b.squares[(p.x+destX)/2][(p.y+destY)/2]
		if captured = mid.occupant; captured != nil {
			owner := light
			if captured.color == Dark {
				owner = dark
			}
			owner.remove(captured)
			mid.clear()
		}
	}

	b.squares[p.x][p.y].clear()
	p.moveTo(destX, destY)
	b.squares[destX][destY].place(p)
	return captured, nil
}
