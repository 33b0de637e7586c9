package render

import (
	"lifeboard/internal/board"
	"lifeboard/internal/core"
)

// Renderer caches the board contents seen in the latest notification so
// painters only re-rasterize after a change.
type Renderer struct {
	cells []uint8
	size  core.Size
	dirty bool
}

// NewRenderer subscribes to b and captures its current state.
func NewRenderer(b *board.Board) *Renderer {
	r := &Renderer{}
	r.update(b)
	b.AddListener(r.update)
	return r
}

func (r *Renderer) update(b *board.Board) {
	r.cells = b.Cells(r.cells)
	r.size = b.Size()
	r.dirty = true
}

// Dirty reports whether the board changed since the last Take.
func (r *Renderer) Dirty() bool { return r.dirty }

// Take returns the cached cells and size and clears the dirty flag.
func (r *Renderer) Take() ([]uint8, core.Size) {
	r.dirty = false
	return r.cells, r.size
}
