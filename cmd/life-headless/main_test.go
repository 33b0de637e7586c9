package main

import (
	"testing"

	"lifeboard/internal/board"
)

func TestSeedIsDeterministic(t *testing.T) {
	a, _ := board.New(12, 9)
	b, _ := board.New(12, 9)

	na := seed(a, 5, 0.4)
	nb := seed(b, 5, 0.4)
	if na != nb || a.String() != b.String() {
		t.Fatal("same seed produced different boards")
	}
	if a.Population() != na {
		t.Fatalf("population = %d, reported %d", a.Population(), na)
	}
	if n := seed(b, 5, 0); n != 0 {
		t.Fatalf("zero density seeded %d cells", n)
	}
}
