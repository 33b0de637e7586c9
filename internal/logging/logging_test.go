package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"lifeboard/internal/board"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("loud"); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
	log, err := New("warn")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info must be disabled at warn level")
	}
}

func TestBoardListenerLogsChanges(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b, err := board.New(3, 3)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	b.AddListener(BoardListener(zap.New(core)))

	b.ToggleCell(1, 1)
	b.Step()

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("logged %d entries, want 2", len(entries))
	}
	first := entries[0].ContextMap()
	if first["change"] != "toggle" || first["population"] != int64(1) {
		t.Fatalf("unexpected fields %v", first)
	}
	if first["cells"] != "...\n.*.\n...\n" {
		t.Fatalf("cells = %q", first["cells"])
	}
	if entries[1].ContextMap()["change"] != "step" {
		t.Fatalf("second entry change = %v, want step", entries[1].ContextMap()["change"])
	}
}

func TestBoardListenerQuietAboveDebug(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	b, err := board.New(2, 2)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	b.AddListener(BoardListener(zap.New(core)))
	b.ToggleCell(0, 0)
	if logs.Len() != 0 {
		t.Fatalf("logged %d entries at info level", logs.Len())
	}
}
