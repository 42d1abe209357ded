package core

import "testing"

func TestClamp(t *testing.T) {
	g := NewByteGrid(128, 72)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{-1, -1, 0, 0},
		{127, 71, 127, 71},
		{128, 72, 127, 71},
		{500, -20, 127, 0},
		{64, 36, 64, 36},
	}
	for _, tc := range cases {
		if x, y := g.Clamp(tc.x, tc.y); x != tc.wx || y != tc.wy {
			t.Fatalf("Clamp(%d,%d) = (%d,%d), want (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestAtReadsClampedCell(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Cells()[g.Index(2, 1)] = 1
	if g.At(9, 9) != 1 {
		t.Fatal("out-of-range read should land on the bottom-right cell")
	}
	if g.At(-1, 0) != 0 {
		t.Fatal("out-of-range read should land on the top-left cell")
	}
	g.Clear()
	if g.At(2, 1) != 0 {
		t.Fatal("Clear left a live cell")
	}
}

func TestNewByteGridRejectsEmptyDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("grid = %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}
