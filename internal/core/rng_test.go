package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Chance(0.3) != b.Chance(0.3) {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
	if a.Chance(0) || !a.Chance(1) {
		t.Fatal("Chance must clamp at the extremes")
	}
}
