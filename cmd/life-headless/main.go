package main

import (
	"flag"
	"log"
	"os"

	"github.com/cheggaaa/pb/v3"
	"go.uber.org/zap"

	"lifeboard/internal/board"
	"lifeboard/internal/config"
	"lifeboard/internal/core"
	"lifeboard/internal/logging"
	"lifeboard/internal/telemetry"
)

func main() {
	quiet := flag.Bool("quiet", false, "hide the progress bar")
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

	var rec *telemetry.Recorder
	if cfg.Telemetry.Path != "" {
		rec, err = telemetry.Create(cfg.Telemetry.Path)
		if err != nil {
			logger.Fatal("opening telemetry", zap.Error(err))
		}
		b.AddListener(rec.Listener())
	}
	b.AddListener(logging.BoardListener(logger))

	seeded := seed(b, cfg.Headless.Seed, cfg.Headless.Density)
	logger.Info("seeded board",
		zap.Int("width", b.Width()),
		zap.Int("height", b.Height()),
		zap.Int("alive", seeded),
		zap.Int64("seed", cfg.Headless.Seed),
	)

	bar := pb.New(cfg.Headless.Generations)
	bar.SetWriter(os.Stderr)
	if !*quiet {
		bar.Start()
	}
	for i := 0; i < cfg.Headless.Generations; i++ {
		b.Step()
		bar.Increment()
	}
	if !*quiet {
		bar.Finish()
	}

	logger.Info("run complete",
		zap.Int("generations", cfg.Headless.Generations),
		zap.Int("alive", b.Population()),
	)
	os.Stdout.WriteString(b.String())

	if rec != nil {
		if err := rec.Close(); err != nil {
			logger.Error("telemetry", zap.Error(err))
		}
	}
}

// seed toggles a deterministic random subset of cells alive.
func seed(b *board.Board, s int64, density float64) int {
	rng := core.NewRNG(s)
	n := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if rng.Chance(density) {
				b.ToggleCell(x, y)
				n++
			}
		}
	}
	return n
}
