package checkers

// Match orchestrates one game: turn order, move dispatch and outcome detection.
// It is not safe for concurrent use.
type Match struct {
	board   *Board
	light   *Player
	dark    *Player
	current Color
	outcome Outcome
	rules   rules
}

// NewMatch returns a match in the standard opening position with Light to move.
func NewMatch(opts ...Option) *Match {
	m := newMatch(Light, opts)
	for y := 0; y < 3; y++ {
		for x := y % 2; x < Size; x += 2 {
			m.setup(x, y, Dark, false)
		}
	}
	for y := 5; y < Size; y++ {
		for x := y % 2; x < Size; x += 2 {
			m.setup(x, y, Light, false)
		}
	}
	return m
}

// NewCustomMatch builds a match from arbitrary placements. The outcome is evaluated
// immediately so a position that is already terminal is reported as such.
func NewCustomMatch(first Color, placements []Placement, opts ...Option) (*Match, error) {
	m := newMatch(first, opts)
	for _, pl := range placements {
		if err := m.setup(pl.X, pl.Y, pl.Color, pl.King); err != nil {
			return nil, err
		}
	}
	m.outcome = m.EvaluateOutcome()
	return m, nil
}

func newMatch(first Color, opts []Option) *Match {
	m := &Match{
		board:   NewBoard(),
		light:   newPlayer(Light),
		dark:    newPlayer(Dark),
		current: first,
	}
	for _, opt := range opts {
		opt(&m.rules)
	}
	return m
}

func (m *Match) setup(x, y int, c Color, king bool) error {
	p := NewPiece(x, y, c)
	p.king = king
	if err := m.board.PlacePiece(x, y, p); err != nil {
		return err
	}
	m.Player(c).add(p)
	return nil
}

// Current returns the side to move.
func (m *Match) Current() Color { return m.current }

// Player returns the player for c.
func (m *Match) Player(c Color) *Player {
	if c == Dark {
		return m.dark
	}
	return m.light
}

// Outcome returns the outcome evaluated after the last applied move.
func (m *Match) Outcome() Outcome { return m.outcome }

// PieceAt returns the occupant at (x,y), or nil.
func (m *Match) PieceAt(x, y int) *Piece { return m.board.PieceAt(x, y) }

// IsMoveLegal exposes the board legality check for callers that want to highlight
// destinations before committing.
func (m *Match) IsMoveLegal(p *Piece, destX, destY int) bool {
	return m.board.IsMoveLegal(p, destX, destY)
}

// Snapshot returns a renderer-facing copy of the board.
func (m *Match) Snapshot() Snapshot { return m.board.Snapshot() }

// SelectPiece returns the current player's live piece at (x,y).
func (m *Match) SelectPiece(x, y int) (*Piece, error) {
	if m.outcome.Terminal() {
		return nil, ErrMatchOver
	}
	if !m.board.InBounds(x, y) {
		return nil, moveErr("select", x, y, ErrOutOfBounds)
	}
	p := m.board.PieceAt(x, y)
	if p == nil || !m.Player(m.current).Owns(p) {
		return nil, moveErr("select", x, y, ErrNoPieceAtSquare)
	}
	return p, nil
}

// AttemptMove validates and applies a move for the current player. A rejected move
// leaves the match untouched.
func (m *Match) AttemptMove(p *Piece, destX, destY int) (MoveResult, error) {
	if m.outcome.Terminal() {
		return MoveResult{}, ErrMatchOver
	}
	if p == nil || !m.Player(m.current).Owns(p) || m.board.PieceAt(p.x, p.y) != p {
		if p == nil {
			return MoveResult{}, moveErr("move", -1, -1, ErrNoPieceAtSquare)
		}
		return MoveResult{}, moveErr("move", p.x, p.y, ErrNoPieceAtSquare)
	}
	if !m.board.InBounds(destX, destY) {
		return MoveResult{}, moveErr("move", destX, destY, ErrOutOfBounds)
	}
	if !m.board.IsMoveLegal(p, destX, destY) {
		return MoveResult{}, moveErr("move", destX, destY, ErrIllegalMove)
	}

	from := p.Coord()
	captured, err := m.board.ApplyMove(p, destX, destY, m.light, m.dark)
	if err != nil {
		return MoveResult{}, err
	}
	res := MoveResult{
		From:     from,
		To:       p.Coord(),
		Captured: captured,
		Promoted: m.rules.promote(p),
	}

	m.outcome = m.EvaluateOutcome()
	res.Outcome = m.outcome
	if !m.outcome.Terminal() {
		m.advanceTurn()
	}
	return res, nil
}

// Play selects the piece at from and moves it to to.
func (m *Match) Play(from, to Coord) (MoveResult, error) {
	p, err := m.SelectPiece(from.X, from.Y)
	if err != nil {
		return MoveResult{}, err
	}
	return m.AttemptMove(p, to.X, to.Y)
}

// EvaluateOutcome reports elimination first, then immobilization of both sides.
func (m *Match) EvaluateOutcome() Outcome {
	switch {
	case m.light.Len() == 0:
		return Outcome{State: Win, Winner: Dark}
	case m.dark.Len() == 0:
		return Outcome{State: Win, Winner: Light}
	case !m.HasMobility(Light) && !m.HasMobility(Dark):
		return Outcome{State: Draw}
	default:
		return Outcome{State: InProgress}
	}
}

var stepOffsets = [4]Coord{{X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 1}}

// HasMobility probes single diagonal steps only; a side whose sole option is a
// capture is reported as immobile.
func (m *Match) HasMobility(c Color) bool {
	for p := range m.Player(c).pieces {
		for _, off := range stepOffsets {
			if m.board.IsMoveLegal(p, p.x+off.X, p.y+off.Y) {
				return true
			}
		}
	}
	return false
}

func (m *Match) advanceTurn() {
	m.current = m.current.Opponent()
}
