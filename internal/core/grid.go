package core

// Grid stores a 2D field of boolean cells indexed [row][col]. All rows share
// one backing slice so cloning is a single allocation.
type Grid struct {
	W, H int
	rows [][]bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	data := make([]bool, w*h)
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = data[y*w : (y+1)*w : (y+1)*w]
	}
	return &Grid{W: w, H: h, rows: rows}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// In reports whether (x, y) addresses a cell of the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Alive reports the state at (x, y). Cells outside the grid are dead.
func (g *Grid) Alive(x, y int) bool {
	return g.In(x, y) && g.rows[y][x]
}

// Set assigns the cell at (x, y). The coordinate must be in bounds.
func (g *Grid) Set(x, y int, alive bool) { g.rows[y][x] = alive }

// Flip inverts the cell at (x, y). The coordinate must be in bounds.
func (g *Grid) Flip(x, y int) { g.rows[y][x] = !g.rows[y][x] }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.W, g.H)
	for y, row := range g.rows {
		copy(c.rows[y], row)
	}
	return c
}

// Equal reports whether both grids have the same shape and cell values.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.W != o.W || g.H != o.H {
		return false
	}
	for y, row := range g.rows {
		for x, v := range row {
			if o.rows[y][x] != v {
				return false
			}
		}
	}
	return true
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, row := range g.rows {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Flatten writes the grid into dst as row-major 0/1 values, growing dst when
// it is too small, and returns the filled slice.
func (g *Grid) Flatten(dst []uint8) []uint8 {
	total := g.W * g.H
	if cap(dst) < total {
		dst = make([]uint8, total)
	}
	dst = dst[:total]
	for y, row := range g.rows {
		base := y * g.W
		for x, v := range row {
			if v {
				dst[base+x] = 1
			} else {
				dst[base+x] = 0
			}
		}
	}
	return dst
}
