package checkers

// Piece is a single playing token. Its position is changed only by Board.
type Piece struct {
	x     int
	y     int
	color Color
	king  bool
	alive bool
}

// NewPiece returns a live, uncrowned piece at (x,y).
func NewPiece(x, y int, color Color) *Piece {
	return &Piece{x: x, y: y, color: color, alive: true}
}

func (p *Piece) X() int        { return p.x }
func (p *Piece) Y() int        { return p.y }
func (p *Piece) Coord() Coord  { return Coord{X: p.x, Y: p.y} }
func (p *Piece) Color() Color  { return p.color }
func (p *Piece) IsKing() bool  { return p.king }
func (p *Piece) IsAlive() bool { return p.alive }

func (p *Piece) moveTo(x, y int) {
	p.x = x
	p.y = y
}
