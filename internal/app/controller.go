package app

import (
	"fmt"

	"go.uber.org/zap"

	"lifeboard/internal/board"
	"lifeboard/internal/config"
	"lifeboard/internal/core"
)

// ticker decides when an auto-play step is due.
type ticker interface {
	ShouldStep() bool
	Restart()
}

// Controller is the UI glue between user actions and the board: step, undo,
// auto-play and resets sized by a pair of bounded spinners.
type Controller struct {
	board *board.Board
	log   *zap.Logger

	ticker ticker
	auto   bool

	cols, rows       int
	minSize, maxSize int

	undoEnabled bool
}

// NewController wires a controller to b using the board bounds and auto-play
// interval from cfg.
func NewController(b *board.Board, cfg *config.Config, log *zap.Logger) *Controller {
	c := &Controller{
		board:   b,
		log:     log,
		ticker:  core.NewFixedStep(cfg.Autoplay.Interval()),
		minSize: cfg.Board.MinSize,
		maxSize: cfg.Board.MaxSize,
	}
	c.cols = c.clamp(b.Width())
	c.rows = c.clamp(b.Height())
	c.undoEnabled = b.CanUndo()
	b.AddListener(func(b *board.Board) {
		c.undoEnabled = b.CanUndo()
	})
	return c
}

// Board returns the controlled board.
func (c *Controller) Board() *board.Board { return c.board }

// Step advances one generation.
func (c *Controller) Step() { c.board.Step() }

// Undo reverts the last change, if any.
func (c *Controller) Undo() { c.board.Undo() }

// ToggleAuto flips auto-play.
func (c *Controller) ToggleAuto() { c.SetAuto(!c.auto) }

// SetAuto starts or stops auto-play. Starting waits a full interval before
// the first step.
func (c *Controller) SetAuto(on bool) {
	if on == c.auto {
		return
	}
	if on {
		c.ticker.Restart()
	}
	c.auto = on
	c.log.Debug("auto-play", zap.Bool("on", on))
}

// Auto reports whether auto-play is running.
func (c *Controller) Auto() bool { return c.auto }

// Tick runs one auto-play step when it is due and reports whether it did.
func (c *Controller) Tick() bool {
	if !c.auto || !c.ticker.ShouldStep() {
		return false
	}
	c.board.Step()
	return true
}

// Reset reinitializes the board at the spinner size and stops auto-play.
func (c *Controller) Reset() error {
	if err := c.board.Reset(c.cols, c.rows); err != nil {
		return fmt.Errorf("reset to %dx%d: %w", c.cols, c.rows, err)
	}
	c.SetAuto(false)
	c.log.Info("board reset", zap.Int("cols", c.cols), zap.Int("rows", c.rows))
	return nil
}

// AdjustCols moves the column spinner by delta within the configured bounds.
func (c *Controller) AdjustCols(delta int) { c.cols = c.clamp(c.cols + delta) }

// AdjustRows moves the row spinner by delta within the configured bounds.
func (c *Controller) AdjustRows(delta int) { c.rows = c.clamp(c.rows + delta) }

// Spinners returns the size the next Reset will use.
func (c *Controller) Spinners() (cols, rows int) { return c.cols, c.rows }

// UndoEnabled mirrors CanUndo as of the latest notification.
func (c *Controller) UndoEnabled() bool { return c.undoEnabled }

// StatusLines describes the board and controls for display.
func (c *Controller) StatusLines() []string {
	b := c.board
	auto := "off"
	if c.auto {
		auto = "on"
	}
	undo := "-"
	if c.undoEnabled {
		undo = fmt.Sprintf("%d", b.UndoDepth())
	}
	return []string{
		fmt.Sprintf("board %dx%d  alive %d  undo %s  auto %s", b.Width(), b.Height(), b.Population(), undo, auto),
		fmt.Sprintf("reset size %dx%d  [N]ext [U]ndo [Space]auto [R]eset arrows:size", c.cols, c.rows),
	}
}

func (c *Controller) clamp(v int) int {
	if v < c.minSize {
		return c.minSize
	}
	if v > c.maxSize {
		return c.maxSize
	}
	return v
}
