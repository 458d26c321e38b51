package main

import (
	"context"
	"testing"

	"github.com/nsf/termbox-go"

	"github.com/park285/checkers/internal/checkers"
	"github.com/park285/checkers/internal/msgcat"
	"github.com/park285/checkers/internal/session"
)

func newTestUI(t *testing.T) *ui {
	t.Helper()
	ctx := context.Background()
	cat := msgcat.Default()
	mgr := session.NewManager(cat)
	g, err := mgr.CreateGame(ctx, "Light", "Dark")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	return newUI(ctx, mgr, cat, g)
}

func press(t *testing.T, u *ui, evs ...termbox.Event) {
	t.Helper()
	for _, ev := range evs {
		if _, err := u.handleKey(ev); err != nil {
			t.Fatalf("handleKey: %v", err)
		}
	}
}

var (
	up    = termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}
	down  = termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowDown}
	left  = termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}
	right = termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight}
	enter = termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}
	esc   = termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}
)

func TestCursorStaysOnBoard(t *testing.T) {
	u := newTestUI(t)
	press(t, u, left, down, down)
	if u.cursor != (checkers.Coord{X: 0, Y: 7}) {
		t.Fatalf("cursor left the board: %+v", u.cursor)
	}
}

func TestSelectAndMove(t *testing.T) {
	u := newTestUI(t)
	press(t, u, right, up, up, enter)
	if u.selected == nil || *u.selected != (checkers.Coord{X: 1, Y: 5}) {
		t.Fatalf("expected b3 selected, got %+v", u.selected)
	}
	if len(u.targets) != 2 {
		t.Fatalf("expected 2 targets, got %v", u.targets)
	}

	press(t, u, left, up, enter)
	if u.selected != nil || u.targets != nil {
		t.Fatalf("selection should clear after a move")
	}
	if u.game.Turn != checkers.Dark || u.game.MoveCount != 1 {
		t.Fatalf("unexpected game: %+v", u.game)
	}
	if u.status != "Light: b3-a4" {
		t.Fatalf("unexpected status %q", u.status)
	}
}

func TestIllegalDestinationKeepsSelection(t *testing.T) {
	u := newTestUI(t)
	press(t, u, right, up, up, enter, up, enter)
	if u.selected == nil {
		t.Fatalf("selection should survive an illegal move")
	}
	if u.status != "Invalid move. Try again." {
		t.Fatalf("unexpected status %q", u.status)
	}
	press(t, u, esc)
	if u.selected != nil {
		t.Fatalf("esc should clear the selection")
	}
}

func TestSelectEmptySquare(t *testing.T) {
	u := newTestUI(t)
	press(t, u, right, up, enter)
	if u.selected != nil {
		t.Fatalf("empty square must not be selectable")
	}
	if u.status != "Invalid piece. Choose one of your own pieces." {
		t.Fatalf("unexpected status %q", u.status)
	}
}

func TestQuitKeys(t *testing.T) {
	u := newTestUI(t)
	for _, ev := range []termbox.Event{
		{Type: termbox.EventKey, Ch: 'q'},
		{Type: termbox.EventKey, Key: termbox.KeyCtrlC},
	} {
		quit, err := u.handleKey(ev)
		if err != nil || !quit {
			t.Fatalf("expected quit for %+v", ev)
		}
	}
}
