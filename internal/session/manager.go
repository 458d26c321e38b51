package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/park285/checkers/internal/checkers"
	"github.com/park285/checkers/internal/msgcat"
	"github.com/park285/checkers/internal/notation"
	"github.com/park285/checkers/internal/obslog"
	"github.com/park285/checkers/internal/render"
	"github.com/park285/checkers/pkg/checkersdto"
	"go.uber.org/zap"
)

// Manager keeps live matches in memory, keyed by game ID. Each match is guarded by
// its own lock so one move is applied at a time per game.
type Manager struct {
	mu       sync.RWMutex
	games    map[string]*entry
	catalog  *msgcat.Catalog
	renderer render.BoardRenderer
	rules    []checkers.Option
	now      func() time.Time
}

type entry struct {
	mu    sync.Mutex
	game  Game
	match *checkers.Match
}

func NewManager(catalog *msgcat.Catalog, rules ...checkers.Option) *Manager {
	if catalog == nil {
		catalog = msgcat.Default()
	}
	return &Manager{
		games:    make(map[string]*entry),
		catalog:  catalog,
		renderer: render.NewPNGRenderer(),
		rules:    rules,
		now:      time.Now,
	}
}

// CreateGame registers a new game in the standard opening position.
func (m *Manager) CreateGame(ctx context.Context, lightName, darkName string) (*Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lightName, darkName = strings.TrimSpace(lightName), strings.TrimSpace(darkName)
	if lightName == "" || darkName == "" {
		return nil, ErrInvalidArgs
	}
	match := checkers.NewMatch(m.rules...)
	now := m.now()
	e := &entry{
		game: Game{
			ID:        uuid.NewString(),
			LightName: lightName,
			DarkName:  darkName,
			Turn:      match.Current(),
			Status:    StatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		},
		match: match,
	}

	m.mu.Lock()
	m.games[e.game.ID] = e
	m.mu.Unlock()

	obslog.L().Info("checkers_game_create",
		zap.String("game_id", e.game.ID),
		zap.String("light", lightName),
		zap.String("dark", darkName),
	)
	g := e.game
	return &g, nil
}

func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.games[strings.TrimSpace(id)]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrGameNotFound
	}
	return e, nil
}

// Get returns a copy of the game.
func (m *Manager) Get(ctx context.Context, id string) (*Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	g := e.game
	return &g, nil
}

// Active lists games still in progress, most recently updated first.
func (m *Manager) Active(ctx context.Context) ([]*Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	entries := make([]*entry, 0, len(m.games))
	for _, e := range m.games {
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	var list []*Game
	for _, e := range entries {
		e.mu.Lock()
		if e.game.Status == StatusActive {
			g := e.game
			list = append(list, &g)
		}
		e.mu.Unlock()
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UpdatedAt.After(list[j].UpdatedAt) })
	return list, nil
}

// Remove discards a game. An unfinished game is logged as aborted.
func (m *Manager) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	e, ok := m.games[strings.TrimSpace(id)]
	if ok {
		delete(m.games, e.game.ID)
	}
	m.mu.Unlock()
	if !ok {
		return ErrGameNotFound
	}

	e.mu.Lock()
	status := e.game.Status
	if status == StatusActive {
		e.game.Status = StatusAborted
	}
	e.mu.Unlock()
	obslog.L().Info("checkers_game_remove", zap.String("game_id", e.game.ID), zap.String("status", string(status)))
	return nil
}

// PlayMove applies move (notation such as "c3 d4") for playerName. Player mistakes are
// reported through the returned message with a nil error; the error is reserved for
// unknown games, players outside the game and engine contract failures.
func (m *Manager) PlayMove(ctx context.Context, gameID, playerName, move string) (*Game, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, "", ErrInvalidArgs
	}
	e, err := m.lookup(gameID)
	if err != nil {
		return nil, "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	g := &e.game
	snapshot := func() *Game { cp := *g; return &cp }

	if g.Status != StatusActive {
		return snapshot(), m.catalog.Text("game.over", nil), nil
	}
	color, ok := colorOf(g, e.match.Current(), playerName)
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrNotInGame, playerName)
	}
	if color != e.match.Current() {
		return snapshot(), m.catalog.Text("move.not_your_turn", map[string]string{"Player": g.NameOf(e.match.Current())}), nil
	}

	from, to, perr := notation.ParseMove(move)
	if perr != nil {
		if errors.Is(perr, checkers.ErrOutOfBounds) {
			return snapshot(), m.catalog.Text("move.out_of_bounds", nil), nil
		}
		return snapshot(), m.catalog.Text("move.bad_input", map[string]string{"Input": strings.TrimSpace(move)}), nil
	}

	res, merr := e.match.Play(from, to)
	switch {
	case merr == nil:
	case errors.Is(merr, checkers.ErrNoPieceAtSquare):
		return snapshot(), m.catalog.Text("move.no_piece", nil), nil
	case errors.Is(merr, checkers.ErrIllegalMove):
		return snapshot(), m.catalog.Text("move.illegal", nil), nil
	case errors.Is(merr, checkers.ErrOutOfBounds):
		return snapshot(), m.catalog.Text("move.out_of_bounds", nil), nil
	case errors.Is(merr, checkers.ErrMatchOver):
		return snapshot(), m.catalog.Text("game.over", nil), nil
	default:
		return nil, "", merr
	}

	mv := notation.FormatMove(res.From, res.To)
	g.MoveCount++
	g.LastMove = mv
	g.Turn = e.match.Current()
	g.UpdatedAt = m.now()

	data := map[string]string{"Player": playerName, "Move": mv}
	key := "move.applied"
	switch {
	case res.Promoted:
		key = "move.promoted"
	case res.Captured != nil:
		key = "move.captured"
		data["Captured"] = notation.FormatSquare(res.Captured.Coord())
	}
	text := m.catalog.Text(key, data)

	switch res.Outcome.State {
	case checkers.Win:
		g.Status = StatusFinished
		g.Outcome = res.Outcome.Winner.String()
		g.Winner = g.NameOf(res.Outcome.Winner)
		text += "\n" + m.catalog.Text("game.win", map[string]string{"Winner": g.Winner, "Color": g.Outcome})
	case checkers.Draw:
		g.Status = StatusDraw
		g.Outcome = "draw"
		text += "\n" + m.catalog.Text("game.draw", nil)
	}

	obslog.L().Info("checkers_move",
		zap.String("game_id", g.ID),
		zap.String("player", playerName),
		zap.String("move", mv),
		zap.Bool("capture", res.Captured != nil),
		zap.String("turn", g.Turn.String()),
		zap.String("status", string(g.Status)),
	)
	if g.Status != StatusActive {
		obslog.L().Info("checkers_game_finish",
			zap.String("game_id", g.ID),
			zap.String("outcome", g.Outcome),
			zap.String("winner", g.Winner),
			zap.Int("moves", g.MoveCount),
		)
	}
	return snapshot(), text, nil
}

// colorOf maps a player name to a side. When both sides share a name (hot-seat play)
// the side to move is assumed.
func colorOf(g *Game, current checkers.Color, name string) (checkers.Color, bool) {
	isLight, isDark := g.LightName == name, g.DarkName == name
	switch {
	case isLight && isDark:
		return current, true
	case isLight:
		return checkers.Light, true
	case isDark:
		return checkers.Dark, true
	default:
		return 0, false
	}
}

// Targets lists the legal destinations of the current player's piece at from.
func (m *Manager) Targets(ctx context.Context, gameID string, from checkers.Coord) ([]checkers.Coord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := m.lookup(gameID)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	p, err := e.match.SelectPiece(from.X, from.Y)
	if err != nil {
		return nil, err
	}
	var out []checkers.Coord
	for _, d := range []int{1, 2} {
		for _, off := range [4]checkers.Coord{{X: -d, Y: -d}, {X: d, Y: -d}, {X: -d, Y: d}, {X: d, Y: d}} {
			to := checkers.Coord{X: from.X + off.X, Y: from.Y + off.Y}
			if e.match.IsMoveLegal(p, to.X, to.Y) {
				out = append(out, to)
			}
		}
	}
	return out, nil
}

// Snapshot returns the current board of a game.
func (m *Manager) Snapshot(ctx context.Context, gameID string) (checkers.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return checkers.Snapshot{}, err
	}
	e, err := m.lookup(gameID)
	if err != nil {
		return checkers.Snapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.match.Snapshot(), nil
}

// State renders the game into a presenter DTO including the text board and, when
// withImage is set, a PNG.
func (m *Manager) State(ctx context.Context, gameID string, withImage bool, opts render.RenderOptions) (*checkersdto.SessionState, error) {
	g, err := m.Get(ctx, gameID)
	if err != nil {
		return nil, err
	}
	snap, err := m.Snapshot(ctx, gameID)
	if err != nil {
		return nil, err
	}
	state := &checkersdto.SessionState{
		GameID:      g.ID,
		LightName:   g.LightName,
		DarkName:    g.DarkName,
		Turn:        g.Turn.String(),
		Status:      string(g.Status),
		Outcome:     g.Outcome,
		Winner:      g.Winner,
		MoveCount:   g.MoveCount,
		LastMove:    g.LastMove,
		LightPieces: snap.Count(checkers.Light),
		DarkPieces:  snap.Count(checkers.Dark),
		BoardText:   render.Text(snap),
	}
	if withImage {
		img, err := m.renderer.RenderPNG(ctx, snap, opts)
		if err != nil {
			return nil, fmt.Errorf("render board: %w", err)
		}
		state.BoardImage = img
	}
	return state, nil
}
