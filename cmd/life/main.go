//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"lifeboard/internal/app"
	"lifeboard/internal/board"
	"lifeboard/internal/config"
	"lifeboard/internal/logging"
	"lifeboard/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	b, err := board.NewWithConfig(board.Config{
		Width:     cfg.Board.Width,
		Height:    cfg.Board.Height,
		UndoDepth: cfg.Board.UndoDepth,
	})
	if err != nil {
		logger.Fatal("creating board", zap.Error(err))
	}
	b.AddListener(logging.BoardListener(logger))

	if cfg.Telemetry.Path != "" {
		rec, err := telemetry.Create(cfg.Telemetry.Path)
		if err != nil {
			logger.Fatal("opening telemetry", zap.Error(err))
		}
		defer func() {
			if err := rec.Close(); err != nil {
				logger.Warn("telemetry", zap.Error(err))
			}
		}()
		b.AddListener(rec.Listener())
	}

	game := app.New(b, cfg, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifeboard")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop", zap.Error(err))
	}
}
