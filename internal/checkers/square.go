package checkers

// Square is one board cell. Its color is fixed at construction.
type Square struct {
	color    Color
	occupant *Piece
}

func squareColor(x, y int) Color {
	if (x+y)%2 == 0 {
		return Light
	}
	return Dark
}

func (s Square) Color() Color     { return s.color }
func (s Square) Occupant() *Piece { return s.occupant }
func (s Square) IsEmpty() bool    { return s.occupant == nil }

func (s *Square) place(p *Piece) { s.occupant = p }
func (s *Square) clear()         { s.occupant = nil }
