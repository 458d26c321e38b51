package checkers

// SquareView is the renderer-facing view of a square. Piece and King are meaningful
// only when Occupied is true.
type SquareView struct {
	SquareColor Color
	Occupied    bool
	Piece       Color
	King        bool
}

// Snapshot is indexed [x][y] like Board.
type Snapshot [Size][Size]SquareView

// At returns the view at (x,y); out-of-bounds coordinates yield the zero value.
func (s Snapshot) At(x, y int) SquareView {
	if !(Coord{X: x, Y: y}).InBounds() {
		return SquareView{}
	}
	return s[x][y]
}

// Count returns the number of occupied squares holding pieces of color c.
func (s Snapshot) Count(c Color) int {
	n := 0
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if v := s[x][y]; v.Occupied && v.Piece == c {
				n++
			}
		}
	}
	return n
}

// Snapshot captures the board for rendering.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			sq := &b.squares[x][y]
			v := SquareView{SquareColor: sq.color}
			if p := sq.occupant; p != nil {
				v.Occupied = true
				v.Piece = p.color
				v.King = p.king
			}
			s[x][y] = v
		}
	}
	return s
}
