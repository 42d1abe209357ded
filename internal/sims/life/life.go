package life

import (
	"math/rand/v2"
	"time"

	"lifegrid/internal/core"

	"golang.org/x/sync/errgroup"
)

// Life implements Conway's Game of Life on a fixed board with clamped edges:
// neighbor reads past the border are pinned to the border row or column, so
// perimeter cells see some neighbors (and corners themselves) more than once.
type Life struct {
	w, h int
	cur  *core.ByteGrid
	nxt  *core.ByteGrid
	rng  *rand.Rand

	workers    int
	generation int
}

// New returns a Life simulation with the provided dimensions. The randomize
// source is seeded from the clock; call Seed for reproducible boards.
func New(w, h int) *Life {
	cur := core.NewByteGrid(w, h)
	return &Life{
		w:       cur.W,
		h:       cur.H,
		cur:     cur,
		nxt:     core.NewByteGrid(cur.W, cur.H),
		rng:     core.NewRNG(time.Now().UnixNano()).Source(),
		workers: 1,
	}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values in row-major order.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Generation returns the number of generations advanced since the board was
// last cleared or randomized.
func (l *Life) Generation() int { return l.generation }

// Seed replaces the randomize source with a deterministic one.
func (l *Life) Seed(seed int64) {
	l.rng = core.NewRNG(seed).Source()
}

// SetWorkers sets how many goroutines share an Advance. Values below one
// fall back to a serial pass.
func (l *Life) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	if n > l.h {
		n = l.h
	}
	l.workers = n
}

// NeighborCount sums the eight cells around (x, y) using clamped addressing.
func (l *Life) NeighborCount(x, y int) int {
	x, y = l.cur.Clamp(x, y)
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(l.cur.At(x+dx, y+dy))
		}
	}
	return n
}

// CellAt returns 1 if the (clamped) cell is alive, 0 otherwise.
func (l *Life) CellAt(x, y int) uint8 { return l.cur.At(x, y) }

// Toggle flips the state of the (clamped) cell.
func (l *Life) Toggle(x, y int) {
	x, y = l.cur.Clamp(x, y)
	idx := l.cur.Index(x, y)
	l.cur.Cells()[idx] ^= 1
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur.Clear()
	l.generation = 0
}

// Randomize sets every cell alive with probability one half.
func (l *Life) Randomize() {
	core.FillBinary(l.rng, l.cur.Cells())
	l.generation = 0
}

// Population returns the number of live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.cur.Cells() {
		n += int(c)
	}
	return n
}

// ForEachLive calls fn for every live cell in row-major order.
func (l *Life) ForEachLive(fn func(x, y int)) {
	cells := l.cur.Cells()
	for y := 0; y < l.h; y++ {
		row := cells[y*l.w : (y+1)*l.w]
		for x, c := range row {
			if c != 0 {
				fn(x, y)
			}
		}
	}
}

// Advance computes the next generation from a frozen copy of the current
// one and swaps it in once every cell is done.
func (l *Life) Advance() {
	if l.workers <= 1 {
		l.stepRows(0, l.h)
	} else {
		var eg errgroup.Group
		band := (l.h + l.workers - 1) / l.workers
		for start := 0; start < l.h; start += band {
			end := min(start+band, l.h)
			eg.Go(func() error {
				l.stepRows(start, end)
				return nil
			})
		}
		_ = eg.Wait()
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

func (l *Life) stepRows(y0, y1 int) {
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < l.w; x++ {
			idx := y*l.w + x
			switch l.NeighborCount(x, y) {
			case 3:
				nxt[idx] = 1
			case 2:
				nxt[idx] = cur[idx]
			default:
				nxt[idx] = 0
			}
		}
	}
}
