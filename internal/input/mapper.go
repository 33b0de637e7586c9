// Package input translates pointer positions into board coordinates.
package input

// Mapper converts between pixel positions and cell indices for a board drawn
// as square cells separated by grid lines, inset by a margin.
type Mapper struct {
	CellSize  int
	LineWidth int
	Margin    int
}

func (m Mapper) pitch() int {
	p := m.CellSize + m.LineWidth
	if p <= 0 {
		return 1
	}
	return p
}

// PositionToIndex returns the cell index under pixel pos along one axis.
// Positions before the board map to negative indices, never to 0.
func (m Mapper) PositionToIndex(pos int) int {
	return floorDiv(pos-m.Margin, m.pitch())
}

// IndexToPosition returns the first pixel inside cell i along one axis.
func (m Mapper) IndexToPosition(i int) int {
	return m.Margin + m.LineWidth + i*m.pitch()
}

// Cell maps a pixel coordinate to the cell under it.
func (m Mapper) Cell(px, py int) (x, y int) {
	return m.PositionToIndex(px), m.PositionToIndex(py)
}

// Extent returns the pixel length needed to draw n cells, including both
// margins and the closing grid line.
func (m Mapper) Extent(n int) int {
	return 2*m.Margin + m.LineWidth + n*m.pitch()
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
