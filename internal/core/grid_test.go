package core

import "testing"

func TestNewGridClampsSize(t *testing.T) {
	g := NewGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("size = %dx%d, want 1x1", g.W, g.H)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(4, 3)
	g.Set(1, 2, true)
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone must equal the source")
	}
	c.Flip(1, 2)
	c.Flip(3, 0)
	if !g.Alive(1, 2) || g.Alive(3, 0) {
		t.Fatal("mutating the clone changed the source")
	}
	if c.Equal(g) {
		t.Fatal("grids should differ after mutation")
	}
}

func TestGridRowsDoNotOverlap(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(2, 0, true)
	if g.Alive(0, 1) {
		t.Fatal("setting the end of row 0 leaked into row 1")
	}
}

func TestGridFlatten(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, true)
	g.Set(2, 1, true)
	cells := g.Flatten(make([]uint8, 1, 16))
	want := []uint8{1, 0, 0, 0, 0, 1}
	if len(cells) != len(want) {
		t.Fatalf("len = %d, want %d", len(cells), len(want))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("cells = %v, want %v", cells, want)
		}
	}
	if g.Population() != 2 {
		t.Fatalf("population = %d, want 2", g.Population())
	}
}

func TestSizeContains(t *testing.T) {
	s := Size{W: 2, H: 3}
	if !s.Contains(1, 2) || s.Contains(2, 0) || s.Contains(0, -1) {
		t.Fatal("Contains disagrees with bounds")
	}
	if (Size{W: 0, H: 3}).Valid() {
		t.Fatal("zero width must be invalid")
	}
}
