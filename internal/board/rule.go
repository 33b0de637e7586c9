package board

import "lifeboard/internal/core"

// next computes the following generation of cur into a fresh grid. cur is
// only read, so every cell sees the same generation of neighbors. Cells past
// the edge count as dead.
func next(cur *core.Grid) *core.Grid {
	nxt := core.NewGrid(cur.W, cur.H)
	for y := 0; y < cur.H; y++ {
		for x := 0; x < cur.W; x++ {
			if survives(cur.Alive(x, y), liveNeighbors(cur, x, y)) {
				nxt.Set(x, y, true)
			}
		}
	}
	return nxt
}

func liveNeighbors(g *core.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// survives applies B3/S23.
func survives(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
