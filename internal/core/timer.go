package core

import "time"

// IntervalGate permits at most one step per elapsed interval. Late frames
// release a single step; missed intervals are never replayed.
type IntervalGate struct {
	interval time.Duration
	last     time.Time
}

// NewIntervalGate constructs a gate whose clock starts at start.
func NewIntervalGate(interval time.Duration, start time.Time) *IntervalGate {
	if interval < 0 {
		interval = 0
	}
	return &IntervalGate{interval: interval, last: start}
}

// Ready reports whether at least one interval has elapsed since the last
// released step. It does not move the clock; call Mark once the step ran.
func (g *IntervalGate) Ready(now time.Time) bool {
	return now.Sub(g.last) >= g.interval
}

// Mark records now as the time of the last released step.
func (g *IntervalGate) Mark(now time.Time) { g.last = now }

// Last returns the time of the last released step.
func (g *IntervalGate) Last() time.Time { return g.last }

// Interval returns the configured gate interval.
func (g *IntervalGate) Interval() time.Duration { return g.interval }
