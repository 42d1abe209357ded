// Package controller turns frame ticks and discrete input events into grid
// mutations. It owns no window and no event loop; the caller feeds it one
// frame at a time.
package controller

import (
	"math"
	"time"

	"lifegrid/internal/core"
)

// Grid is the set of engine operations the controller drives.
type Grid interface {
	Advance()
	Toggle(x, y int)
	Clear()
	Randomize()
}

// Controller holds the pause state, pointer position and interval gate.
type Controller struct {
	grid     Grid
	gate     *core.IntervalGate
	cellSize float32

	paused bool
	px, py float32
}

// New returns a paused controller whose gate clock starts at now.
func New(grid Grid, cellSize int, interval time.Duration, now time.Time) *Controller {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Controller{
		grid:     grid,
		gate:     core.NewIntervalGate(interval, now),
		cellSize: float32(cellSize),
		paused:   true,
	}
}

// Paused reports whether generation advance is suspended.
func (c *Controller) Paused() bool { return c.paused }

// Pointer returns the last reported pointer position.
func (c *Controller) Pointer() (float32, float32) { return c.px, c.py }

// LastAdvance returns the time the grid last advanced, or the construction
// time if it never has.
func (c *Controller) LastAdvance() time.Time { return c.gate.Last() }

// OnFrameTick advances at most one generation if running and the interval
// has elapsed since the last advance.
func (c *Controller) OnFrameTick(now time.Time) {
	if c.paused || !c.gate.Ready(now) {
		return
	}
	c.grid.Advance()
	c.gate.Mark(now)
}

// OnPointerMove records the pointer position in window pixels.
func (c *Controller) OnPointerMove(x, y float32) {
	c.px, c.py = x, y
}

// OnButtonPress toggles the cell under the pointer for the primary button.
func (c *Controller) OnButtonPress(b core.Button) {
	if b != core.ButtonPrimary {
		return
	}
	c.grid.Toggle(c.CellUnderPointer())
}

// CellUnderPointer maps the pointer position to grid indices. Results may be
// out of range at the window edges; the grid clamps them.
func (c *Controller) CellUnderPointer() (int, int) {
	x := math.Floor(float64(c.px / c.cellSize))
	y := math.Floor(float64(c.py / c.cellSize))
	return int(x), int(y)
}

// OnKeyPress dispatches pause, clear and randomize keys. Other keys are ignored.
func (c *Controller) OnKeyPress(k core.Key) {
	switch k {
	case core.KeyTogglePause:
		c.paused = !c.paused
	case core.KeyClear:
		c.grid.Clear()
	case core.KeyRandomize:
		c.grid.Randomize()
	}
}
