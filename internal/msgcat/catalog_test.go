package msgcat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedCatalogRenders(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.Render("game.win", map[string]string{"Winner": "Alice", "Color": "light"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "Game over! Alice (light) wins!" {
		t.Fatalf("unexpected text: %q", got)
	}
	got, err = c.Render("move.bad_input", map[string]string{"Input": "zz"})
	if err != nil || !strings.Contains(got, `"zz"`) {
		t.Fatalf("bad_input: %q %v", got, err)
	}
}

func TestMissingDataAndKeys(t *testing.T) {
	c := Default()
	if _, err := c.Render("game.win", map[string]string{"Winner": "Alice"}); err == nil {
		t.Fatalf("expected missingkey error")
	}
	if _, err := c.Render("no.such.key", nil); err == nil {
		t.Fatalf("expected not found error")
	}
	if got := c.Text("no.such.key", nil); got != "no.such.key" {
		t.Fatalf("Text fallback: %q", got)
	}
	if !c.Has("move.illegal") || c.Has("move") {
		t.Fatalf("Has mismatch")
	}
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("move:\n  illegal: \"Nope.\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Text("move.illegal", nil); got != "Nope." {
		t.Fatalf("override not applied: %q", got)
	}
	if got := c.Text("game.draw", nil); !strings.Contains(got, "draw") {
		t.Fatalf("embedded default lost: %q", got)
	}
}

func TestOverrideDuplicateKeys(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("game:\n  over: \"x\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := New(dir); err == nil || !strings.Contains(err.Error(), "duplicate override key") {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestNonStringLeafRejected(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("game:\n  over: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(dir); err == nil {
		t.Fatalf("expected error for non-string leaf")
	}
}
