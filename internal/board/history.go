package board

import "lifeboard/internal/core"

// history is a fixed-capacity LIFO of grid snapshots. Pushing onto a full
// history evicts the oldest snapshot.
type history struct {
	buf   []*core.Grid
	start int
	n     int
}

func newHistory(capacity int) *history {
	return &history{buf: make([]*core.Grid, capacity)}
}

func (h *history) push(g *core.Grid) {
	c := len(h.buf)
	if h.n == c {
		h.buf[h.start] = nil
		h.start = (h.start + 1) % c
		h.n--
	}
	h.buf[(h.start+h.n)%c] = g
	h.n++
}

func (h *history) pop() (*core.Grid, bool) {
	if h.n == 0 {
		return nil, false
	}
	i := (h.start + h.n - 1) % len(h.buf)
	g := h.buf[i]
	h.buf[i] = nil
	h.n--
	return g, true
}

func (h *history) clear() {
	clear(h.buf)
	h.start, h.n = 0, 0
}

func (h *history) len() int { return h.n }
