// Package board implements a Conway's Game of Life board with bounded undo
// and synchronous change notification.
//
// A Board is not safe for concurrent use. Callers driving Step from a timer
// while also applying edits must serialize all calls onto one goroutine.
package board

import (
	"errors"
	"fmt"
	"strings"

	"lifeboard/internal/core"
)

// DefaultUndoDepth is the number of snapshots kept when Config.UndoDepth is zero.
const DefaultUndoDepth = 32

var (
	// ErrInvalidSize is returned for non-positive board dimensions.
	ErrInvalidSize = errors.New("board: width and height must be positive")
	// ErrInvalidUndoDepth is returned for a negative undo depth.
	ErrInvalidUndoDepth = errors.New("board: undo depth must not be negative")
)

// Config controls board construction.
type Config struct {
	Width  int
	Height int

	// UndoDepth caps the history; zero selects DefaultUndoDepth.
	UndoDepth int
}

// Board owns the grid, its undo history and the registered listeners.
type Board struct {
	cells     *core.Grid
	history   *history
	listeners []Listener
	last      Change
}

// New returns an all-dead board of the given size with the default undo depth.
func New(w, h int) (*Board, error) {
	return NewWithConfig(Config{Width: w, Height: h})
}

// NewWithConfig returns an all-dead board configured from cfg.
func NewWithConfig(cfg Config) (*Board, error) {
	if err := checkSize(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	depth := cfg.UndoDepth
	if depth == 0 {
		depth = DefaultUndoDepth
	}
	if depth < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidUndoDepth, cfg.UndoDepth)
	}
	return &Board{
		cells:   core.NewGrid(cfg.Width, cfg.Height),
		history: newHistory(depth),
	}, nil
}

func checkSize(w, h int) error {
	if !(core.Size{W: w, H: h}).Valid() {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	return nil
}

// AddListener registers l. Listeners are never removed, and survive Reset.
func (b *Board) AddListener(l Listener) {
	if l == nil {
		return
	}
	b.listeners = append(b.listeners, l)
}

func (b *Board) fireUpdate(c Change) {
	b.last = c
	for _, l := range b.listeners {
		l(b)
	}
}

// ToggleCell flips the cell at (x, y). Out-of-bounds coordinates are ignored
// without recording history or notifying.
func (b *Board) ToggleCell(x, y int) {
	if !b.cells.In(x, y) {
		return
	}
	b.history.push(b.cells.Clone())
	b.cells.Flip(x, y)
	b.fireUpdate(ChangeToggle)
}

// Step advances the board by one generation.
func (b *Board) Step() {
	prev := b.cells
	b.cells = next(prev)
	b.history.push(prev)
	b.fireUpdate(ChangeStep)
}

// Reset replaces the board with an all-dead grid of the given size and clears
// the history. Invalid dimensions leave the board untouched.
func (b *Board) Reset(w, h int) error {
	if err := checkSize(w, h); err != nil {
		return err
	}
	b.cells = core.NewGrid(w, h)
	b.history.clear()
	b.fireUpdate(ChangeReset)
	return nil
}

// Undo restores the most recent snapshot. It does nothing when the history
// is empty.
func (b *Board) Undo() {
	prev, ok := b.history.pop()
	if !ok {
		return
	}
	b.cells = prev
	b.fireUpdate(ChangeUndo)
}

// IsAlive reports whether (x, y) is an in-bounds live cell.
func (b *Board) IsAlive(x, y int) bool { return b.cells.Alive(x, y) }

// Width returns the number of columns.
func (b *Board) Width() int { return b.cells.W }

// Height returns the number of rows.
func (b *Board) Height() int { return b.cells.H }

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return b.cells.Size() }

// CanUndo reports whether Undo would change the board.
func (b *Board) CanUndo() bool { return b.history.len() > 0 }

// UndoDepth returns the number of snapshots currently held.
func (b *Board) UndoDepth() int { return b.history.len() }

// Population counts the live cells.
func (b *Board) Population() int { return b.cells.Population() }

// LastChange reports the mutation behind the latest notification.
func (b *Board) LastChange() Change { return b.last }

// Cells writes the grid into dst as row-major 0/1 values.
func (b *Board) Cells(dst []uint8) []uint8 { return b.cells.Flatten(dst) }

// String renders the board with '*' for live and '.' for dead cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.cells.W + 1) * b.cells.H)
	for y := 0; y < b.cells.H; y++ {
		for x := 0; x < b.cells.W; x++ {
			if b.cells.Alive(x, y) {
				sb.WriteByte('*')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
