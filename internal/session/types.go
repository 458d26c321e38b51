package session

import (
	"time"

	"github.com/park285/checkers/internal/checkers"
)

// Status represents a game lifecycle state.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusFinished Status = "FINISHED"
	StatusDraw     Status = "DRAW"
	StatusAborted  Status = "ABORTED"
)

// Game is a point-in-time copy of a registered match.
type Game struct {
	ID        string
	LightName string
	DarkName  string
	Turn      checkers.Color
	Status    Status
	Winner    string // player name, set on FINISHED
	Outcome   string // light | dark | draw
	MoveCount int
	LastMove  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NameOf returns the player name playing c.
func (g *Game) NameOf(c checkers.Color) string {
	if c == checkers.Dark {
		return g.DarkName
	}
	return g.LightName
}

var (
	ErrInvalidArgs  = errf("invalid arguments")
	ErrGameNotFound = errf("game not found")
	ErrNotInGame    = errf("player not in game")
)

type staticErr string

func (e staticErr) Error() string { return string(e) }
func errf(s string) error         { return staticErr(s) }
