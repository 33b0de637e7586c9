package app

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"lifeboard/internal/board"
	"lifeboard/internal/config"
)

type fakeTicker struct {
	due      bool
	restarts int
}

func (f *fakeTicker) ShouldStep() bool { return f.due }
func (f *fakeTicker) Restart()         { f.restarts++ }

func newTestController(t *testing.T) (*Controller, *fakeTicker) {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	b, err := board.New(cfg.Board.Width, cfg.Board.Height)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	c := NewController(b, cfg, zap.NewNop())
	ft := &fakeTicker{}
	c.ticker = ft
	return c, ft
}

func TestUndoEnabledFollowsBoard(t *testing.T) {
	c, _ := newTestController(t)
	if c.UndoEnabled() {
		t.Fatal("undo must start disabled")
	}
	c.Board().ToggleCell(1, 1)
	if !c.UndoEnabled() {
		t.Fatal("undo must enable after an edit")
	}
	c.Undo()
	if c.UndoEnabled() {
		t.Fatal("undo must disable once history is empty")
	}
	c.Step()
	if !c.UndoEnabled() {
		t.Fatal("undo must enable after a step")
	}
}

func TestAutoPlaySteps(t *testing.T) {
	c, ft := newTestController(t)
	ft.due = true
	if c.Tick() {
		t.Fatal("tick must not step while auto-play is off")
	}

	c.ToggleAuto()
	if !c.Auto() || ft.restarts != 1 {
		t.Fatalf("auto=%v restarts=%d, want on and 1", c.Auto(), ft.restarts)
	}
	if !c.Tick() || c.Board().UndoDepth() != 1 {
		t.Fatal("tick must step when due")
	}
	ft.due = false
	if c.Tick() {
		t.Fatal("tick must wait for the ticker")
	}
}

func TestResetUsesSpinnersAndStopsAuto(t *testing.T) {
	c, _ := newTestController(t)
	c.Board().ToggleCell(0, 0)
	c.SetAuto(true)

	c.AdjustCols(3)
	c.AdjustRows(-5)
	if cols, rows := c.Spinners(); cols != 13 || rows != 10 {
		t.Fatalf("spinners = %dx%d, want 13x10", cols, rows)
	}
	c.AdjustCols(100)
	if cols, _ := c.Spinners(); cols != 20 {
		t.Fatalf("cols = %d, want clamp to 20", cols)
	}

	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	b := c.Board()
	if b.Width() != 20 || b.Height() != 10 {
		t.Fatalf("board = %dx%d, want 20x10", b.Width(), b.Height())
	}
	if c.Auto() {
		t.Fatal("reset must stop auto-play")
	}
	if c.UndoEnabled() {
		t.Fatal("reset must disable undo")
	}
}

func TestStatusLines(t *testing.T) {
	c, _ := newTestController(t)
	c.Board().ToggleCell(2, 2)
	lines := c.StatusLines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "board 10x10") || !strings.Contains(lines[0], "alive 1") || !strings.Contains(lines[0], "undo 1") {
		t.Fatalf("status = %q", lines[0])
	}
}
