// Package logging builds the zap logger shared by the front ends and provides
// a board listener that traces every change.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lifeboard/internal/board"
)

// New returns a console logger at the given level ("debug", "info", ...).
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// BoardListener logs each notification at debug level together with a dump
// of the board.
func BoardListener(log *zap.Logger) board.Listener {
	return func(b *board.Board) {
		ce := log.Check(zapcore.DebugLevel, "board changed")
		if ce == nil {
			return
		}
		ce.Write(
			zap.Stringer("change", b.LastChange()),
			zap.Int("width", b.Width()),
			zap.Int("height", b.Height()),
			zap.Int("population", b.Population()),
			zap.Int("undoable", b.UndoDepth()),
			zap.String("cells", b.String()),
		)
	}
}
