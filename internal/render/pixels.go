package render

import (
	"image/color"

	"lifeboard/internal/core"
	"lifeboard/internal/input"
)

// Palette holds the colors used to paint a board.
type Palette struct {
	Alive      color.Color
	Dead       color.Color
	Line       color.Color
	Background color.Color
}

// DefaultPalette paints live cells green and dead cells gray on black lines.
func DefaultPalette() Palette {
	return Palette{
		Alive:      color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Dead:       color.RGBA{R: 128, G: 128, B: 128, A: 255},
		Line:       color.Black,
		Background: color.RGBA{R: 238, G: 238, B: 238, A: 255},
	}
}

// Frame rasterizes flattened board cells into an RGBA buffer using the same
// geometry the pointer mapping uses.
type Frame struct {
	Layout  input.Mapper
	Palette Palette
}

// Bounds returns the pixel size of a frame for a board of the given size.
func (f Frame) Bounds(size core.Size) (int, int) {
	return f.Layout.Extent(size.W), f.Layout.Extent(size.H)
}

// Paint draws cells (row-major, 0/1) into buf, growing it when needed, and
// returns the filled buffer.
func (f Frame) Paint(buf []byte, cells []uint8, size core.Size) []byte {
	pw, ph := f.Bounds(size)
	need := 4 * pw * ph
	if cap(buf) < need {
		buf = make([]byte, need)
	}
	buf = buf[:need]

	fillRect(buf, pw, 0, 0, pw, ph, rgba(f.Palette.Background))

	l := f.Layout
	pitch := l.CellSize + l.LineWidth
	if l.LineWidth > 0 {
		line := rgba(f.Palette.Line)
		span := l.LineWidth + size.W*pitch
		for x := 0; x <= size.W; x++ {
			fillRect(buf, pw, l.Margin+x*pitch, l.Margin, l.LineWidth, l.LineWidth+size.H*pitch, line)
		}
		for y := 0; y <= size.H; y++ {
			fillRect(buf, pw, l.Margin, l.Margin+y*pitch, span, l.LineWidth, line)
		}
	}

	alive, dead := rgba(f.Palette.Alive), rgba(f.Palette.Dead)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := dead
			if i := y*size.W + x; i < len(cells) && cells[i] != 0 {
				c = alive
			}
			fillRect(buf, pw, l.IndexToPosition(x), l.IndexToPosition(y), l.CellSize, l.CellSize, c)
		}
	}
	return buf
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillRect paints a rectangle into an RGBA buffer with the given row width in
// pixels. The rectangle must lie inside the buffer.
func fillRect(buf []byte, stride, x0, y0, w, h int, c [4]byte) {
	for y := y0; y < y0+h; y++ {
		base := (y*stride + x0) * 4
		for x := 0; x < w; x++ {
			copy(buf[base+x*4:base+x*4+4], c[:])
		}
	}
}
