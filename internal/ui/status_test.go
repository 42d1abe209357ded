package ui

import (
	"strings"
	"testing"
)

func TestStatusString(t *testing.T) {
	cases := []struct {
		in     Status
		prefix string
	}{
		{Status{Paused: true}, "paused  gen 0  pop 0"},
		{Status{Generation: 12, Population: 340}, "running  gen 12  pop 340"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); !strings.HasPrefix(got, tc.prefix) {
			t.Fatalf("Status%+v = %q, want prefix %q", tc.in, got, tc.prefix)
		}
	}
}
