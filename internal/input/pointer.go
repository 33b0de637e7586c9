package input

// Toggler is the part of a board the pointer edits.
type Toggler interface {
	ToggleCell(x, y int)
}

// Stroke tracks a press-and-drag gesture so that each cell entered while the
// button is held toggles exactly once, and a fresh press always toggles.
type Stroke struct {
	prevX, prevY int
	active       bool
}

// NewStroke returns a Stroke with no previous cell.
func NewStroke() *Stroke {
	return &Stroke{prevX: -1, prevY: -1}
}

// Press records a press or drag over cell (x, y) and reports whether that
// cell should toggle.
func (s *Stroke) Press(x, y int) bool {
	toggle := x != s.prevX || y != s.prevY || !s.active
	s.prevX, s.prevY = x, y
	s.active = true
	return toggle
}

// Release records pointer movement with the button up.
func (s *Stroke) Release(x, y int) {
	s.prevX, s.prevY = x, y
	s.active = false
}

// Pointer feeds polled pointer state into a Toggler.
type Pointer struct {
	Mapper Mapper
	stroke *Stroke
}

// NewPointer returns a Pointer using the given layout.
func NewPointer(m Mapper) *Pointer {
	return &Pointer{Mapper: m, stroke: NewStroke()}
}

// Update handles one polled sample at pixel (px, py). Out-of-board cells are
// passed through; the board ignores them.
func (p *Pointer) Update(t Toggler, px, py int, pressed bool) {
	x, y := p.Mapper.Cell(px, py)
	if !pressed {
		p.stroke.Release(x, y)
		return
	}
	if p.stroke.Press(x, y) {
		t.ToggleCell(x, y)
	}
}
