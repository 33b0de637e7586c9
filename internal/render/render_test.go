package render

import (
	"testing"

	"lifeboard/internal/board"
	"lifeboard/internal/core"
	"lifeboard/internal/input"
)

func pixel(buf []byte, stride, x, y int) [4]byte {
	i := (y*stride + x) * 4
	return [4]byte{buf[i], buf[i+1], buf[i+2], buf[i+3]}
}

func TestFramePaint(t *testing.T) {
	f := Frame{Layout: input.Mapper{CellSize: 4, LineWidth: 1, Margin: 2}, Palette: DefaultPalette()}
	size := core.Size{W: 2, H: 1}
	pw, ph := f.Bounds(size)
	if pw != 2*2+1+2*5 || ph != 2*2+1+5 {
		t.Fatalf("bounds = %dx%d", pw, ph)
	}

	buf := f.Paint(nil, []uint8{1, 0}, size)
	if len(buf) != 4*pw*ph {
		t.Fatalf("len = %d, want %d", len(buf), 4*pw*ph)
	}

	alive := rgba(f.Palette.Alive)
	dead := rgba(f.Palette.Dead)
	line := rgba(f.Palette.Line)
	bg := rgba(f.Palette.Background)

	if got := pixel(buf, pw, 0, 0); got != bg {
		t.Fatalf("margin pixel = %v, want background %v", got, bg)
	}
	if got := pixel(buf, pw, 2, 2); got != line {
		t.Fatalf("corner line pixel = %v, want %v", got, line)
	}
	if got := pixel(buf, pw, 3, 3); got != alive {
		t.Fatalf("first cell pixel = %v, want alive %v", got, alive)
	}
	if got := pixel(buf, pw, 7, 4); got != line {
		t.Fatalf("separator pixel = %v, want line %v", got, line)
	}
	if got := pixel(buf, pw, 8, 3); got != dead {
		t.Fatalf("second cell pixel = %v, want dead %v", got, dead)
	}
}

func TestRendererTracksNotifications(t *testing.T) {
	b, err := board.New(3, 2)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	r := NewRenderer(b)
	if !r.Dirty() {
		t.Fatal("renderer must start dirty")
	}
	_, size := r.Take()
	if size != (core.Size{W: 3, H: 2}) {
		t.Fatalf("size = %+v", size)
	}
	if r.Dirty() {
		t.Fatal("Take must clear the dirty flag")
	}

	b.ToggleCell(2, 1)
	if !r.Dirty() {
		t.Fatal("toggle must mark the renderer dirty")
	}
	cells, _ := r.Take()
	if cells[5] != 1 {
		t.Fatalf("cells = %v", cells)
	}

	if err := b.Reset(4, 4); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	cells, size = r.Take()
	if size != (core.Size{W: 4, H: 4}) || len(cells) != 16 {
		t.Fatalf("after reset size=%+v len=%d", size, len(cells))
	}
}
