package core

import (
	"slices"
	"testing"
)

func TestFillBinarySeeded(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillBinary(NewRNG(3).Source(), a)
	FillBinary(NewRNG(3).Source(), b)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different fills")
	}
	ones := 0
	for _, v := range a {
		if v > 1 {
			t.Fatalf("value %d outside {0,1}", v)
		}
		ones += int(v)
	}
	if ones == 0 || ones == len(a) {
		t.Fatalf("fill is degenerate: %d ones of %d", ones, len(a))
	}
}
