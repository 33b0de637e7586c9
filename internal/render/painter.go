//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter keeps an ebiten image of the board in sync with a Renderer.
type GridPainter struct {
	frame Frame
	w, h  int
	img   *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for the given frame geometry.
func NewGridPainter(frame Frame) *GridPainter {
	return &GridPainter{frame: frame}
}

// Blit re-rasterizes when the renderer is dirty and draws the board image.
func (gp *GridPainter) Blit(dst *ebiten.Image, r *Renderer) {
	if gp.img == nil || r.Dirty() {
		cells, size := r.Take()
		pw, ph := gp.frame.Bounds(size)
		if gp.img == nil || gp.w != pw || gp.h != ph {
			if gp.img != nil {
				gp.img.Dispose()
			}
			gp.img = ebiten.NewImage(pw, ph)
			gp.w, gp.h = pw, ph
		}
		gp.buf = gp.frame.Paint(gp.buf, cells, size)
		gp.img.WritePixels(gp.buf)
	}
	dst.DrawImage(gp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
