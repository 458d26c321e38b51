package main

import (
	"context"
	"errors"

	"github.com/nsf/termbox-go"

	"github.com/park285/checkers/internal/checkers"
	"github.com/park285/checkers/internal/msgcat"
	"github.com/park285/checkers/internal/notation"
	"github.com/park285/checkers/internal/render"
	"github.com/park285/checkers/internal/session"
)

const (
	boardLeft = 3
	boardTop  = 1
	cellWidth = 3
)

// ui is the hot-seat terminal front end. Key handling is kept apart from drawing so it
// can run without a terminal.
type ui struct {
	ctx      context.Context
	mgr      *session.Manager
	catalog  *msgcat.Catalog
	game     *session.Game
	cursor   checkers.Coord
	selected *checkers.Coord
	targets  []checkers.Coord
	status   string
}

func newUI(ctx context.Context, mgr *session.Manager, catalog *msgcat.Catalog, game *session.Game) *ui {
	u := &ui{
		ctx:     ctx,
		mgr:     mgr,
		catalog: catalog,
		game:    game,
		cursor:  checkers.Coord{X: 0, Y: checkers.Size - 1},
	}
	u.status = catalog.Text("game.start", map[string]string{"Light": game.LightName, "Dark": game.DarkName})
	return u
}

func (u *ui) run() error {
	for {
		if err := u.draw(); err != nil {
			return err
		}
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventError:
			return ev.Err
		case termbox.EventKey:
			quit, err := u.handleKey(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// handleKey applies one key press and reports whether the loop should stop.
func (u *ui) handleKey(ev termbox.Event) (bool, error) {
	switch {
	case ev.Key == termbox.KeyCtrlC || ev.Ch == 'q':
		return true, nil
	case ev.Key == termbox.KeyArrowUp:
		u.moveCursor(0, -1)
	case ev.Key == termbox.KeyArrowDown:
		u.moveCursor(0, 1)
	case ev.Key == termbox.KeyArrowLeft:
		u.moveCursor(-1, 0)
	case ev.Key == termbox.KeyArrowRight:
		u.moveCursor(1, 0)
	case ev.Key == termbox.KeyEsc:
		u.clearSelection()
	case ev.Key == termbox.KeyEnter || ev.Key == termbox.KeySpace:
		return false, u.activate()
	}
	return false, nil
}

func (u *ui) moveCursor(dx, dy int) {
	next := checkers.Coord{X: u.cursor.X + dx, Y: u.cursor.Y + dy}
	if next.InBounds() {
		u.cursor = next
	}
}

func (u *ui) clearSelection() {
	u.selected = nil
	u.targets = nil
}

func (u *ui) activate() error {
	if u.game.Status != session.StatusActive {
		u.status = u.catalog.Text("game.over", nil)
		return nil
	}
	if u.selected == nil || *u.selected == u.cursor {
		if u.selected != nil {
			u.clearSelection()
			return nil
		}
		return u.selectAt(u.cursor)
	}
	// a different own piece switches the selection
	if p := u.pieceAtCursor(); p != nil && p.Piece == u.game.Turn {
		return u.selectAt(u.cursor)
	}

	move := notation.FormatMove(*u.selected, u.cursor)
	before := u.game.MoveCount
	g, text, err := u.mgr.PlayMove(u.ctx, u.game.ID, u.game.NameOf(u.game.Turn), move)
	if err != nil {
		return err
	}
	u.game = g
	u.status = text
	if g.MoveCount > before {
		u.clearSelection()
	}
	return nil
}

func (u *ui) selectAt(c checkers.Coord) error {
	targets, err := u.mgr.Targets(u.ctx, u.game.ID, c)
	switch {
	case err == nil:
		u.selected = &c
		u.targets = targets
		u.status = u.catalog.Text("prompt.destination", map[string]string{
			"Player": u.game.NameOf(u.game.Turn),
			"From":   notation.FormatSquare(c),
		})
		return nil
	case errors.Is(err, checkers.ErrNoPieceAtSquare), errors.Is(err, checkers.ErrOutOfBounds):
		u.status = u.catalog.Text("move.no_piece", nil)
		return nil
	case errors.Is(err, checkers.ErrMatchOver):
		u.status = u.catalog.Text("game.over", nil)
		return nil
	default:
		return err
	}
}

func (u *ui) pieceAtCursor() *checkers.SquareView {
	snap, err := u.mgr.Snapshot(u.ctx, u.game.ID)
	if err != nil {
		return nil
	}
	v := snap.At(u.cursor.X, u.cursor.Y)
	if !v.Occupied {
		return nil
	}
	return &v
}

func (u *ui) isTarget(c checkers.Coord) bool {
	for _, t := range u.targets {
		if t == c {
			return true
		}
	}
	return false
}

func (u *ui) draw() error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	snap, err := u.mgr.Snapshot(u.ctx, u.game.ID)
	if err != nil {
		return err
	}
	for x := 0; x < checkers.Size; x++ {
		termbox.SetCell(boardLeft+x*cellWidth+1, boardTop-1, rune('a'+x), termbox.ColorDefault, termbox.ColorDefault)
	}
	for y := 0; y < checkers.Size; y++ {
		termbox.SetCell(1, boardTop+y, rune('0'+checkers.Size-y), termbox.ColorDefault, termbox.ColorDefault)
		for x := 0; x < checkers.Size; x++ {
			c := checkers.Coord{X: x, Y: y}
			v := snap.At(x, y)
			fg, bg := u.cellColors(c, v)
			ch := ' '
			if v.Occupied {
				ch = render.Glyph(v)
			}
			sx := boardLeft + x*cellWidth
			termbox.SetCell(sx, boardTop+y, ' ', fg, bg)
			termbox.SetCell(sx+1, boardTop+y, ch, fg, bg)
			termbox.SetCell(sx+2, boardTop+y, ' ', fg, bg)
		}
	}

	line := boardTop + checkers.Size + 1
	if u.game.Status == session.StatusActive && u.selected == nil {
		drawText(0, line, u.catalog.Text("prompt.select", map[string]string{
			"Player": u.game.NameOf(u.game.Turn),
			"Color":  u.game.Turn.String(),
		}))
		line++
	}
	drawText(0, line, u.status)
	drawText(0, line+2, u.catalog.Text("prompt.keys", nil))
	return termbox.Flush()
}

func (u *ui) cellColors(c checkers.Coord, v checkers.SquareView) (termbox.Attribute, termbox.Attribute) {
	fg := termbox.ColorDefault
	if v.Occupied {
		fg = termbox.ColorRed | termbox.AttrBold
		if v.Piece == checkers.Light {
			fg = termbox.ColorYellow | termbox.AttrBold
		}
	}
	bg := termbox.ColorBlack
	if v.SquareColor == checkers.Light {
		bg = termbox.ColorBlue
	}
	switch {
	case c == u.cursor:
		bg = termbox.ColorCyan
	case u.selected != nil && c == *u.selected:
		bg = termbox.ColorGreen
	case u.isTarget(c):
		bg = termbox.ColorMagenta
	}
	return fg, bg
}

func drawText(x, y int, s string) {
	col := x
	for _, r := range s {
		if r == '\n' {
			y++
			col = x
			continue
		}
		termbox.SetCell(col, y, r, termbox.ColorDefault, termbox.ColorDefault)
		col++
	}
}
