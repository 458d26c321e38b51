package checkers

// Option configures optional rules of a Match.
type Option func(*rules)

type rules struct {
	promotion bool
}

// WithPromotion crowns a piece that reaches the far row: row 0 for Light, row 7 for
// Dark. The king flag does not alter move legality.
func WithPromotion() Option {
	return func(r *rules) { r.promotion = true }
}

func (r rules) promote(p *Piece) bool {
	if !r.promotion || p.king {
		return false
	}
	if (p.color == Light && p.y == 0) || (p.color == Dark && p.y == Size-1) {
		p.king = true
		return true
	}
	return false
}
