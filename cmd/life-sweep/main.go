package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"slices"
	"sort"
	"sync"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/sims/life"
)

// scenarioResult summarises one seeded board. settledAt is the generation at
// which the board first repeated itself with period 1 or 2, or -1 if it never
// did within the step budget.
type scenarioResult struct {
	seed       int64
	initialPop int
	finalPop   int
	peakPop    int
	settledAt  int
	period     int
}

func main() {
	seeds := flag.Int("seeds", 32, "number of seeded boards to run")
	firstSeed := flag.Int64("seed", 1, "first seed; boards use seed, seed+1, ...")
	steps := flag.Int("steps", 2000, "generations to simulate per board")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", core.GridWidth, "board width")
	height := flag.Int("h", core.GridHeight, "board height")
	flag.Parse()

	if *seeds <= 0 || *steps <= 0 {
		log.Fatalf("seeds and steps must be positive (got %d, %d)", *seeds, *steps)
	}
	if *workers <= 0 {
		*workers = 1
	}

	fmt.Printf("Sweeping %d boards of %dx%d (%d workers, %d steps)\n", *seeds, *width, *height, *workers, *steps)

	jobs := make(chan int64)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runScenario(*width, *height, seed, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *firstSeed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })

	settled := 0
	for _, res := range all {
		state := "unsettled"
		if res.settledAt >= 0 {
			settled++
			state = fmt.Sprintf("settled at %d (period %d)", res.settledAt, res.period)
		}
		fmt.Printf("seed=%d pop %d -> %d (peak %d) %s\n", res.seed, res.initialPop, res.finalPop, res.peakPop, state)
	}
	fmt.Printf("\n%d/%d boards settled (elapsed %s)\n", settled, len(all), time.Since(start).Round(time.Millisecond))
}

func runScenario(w, h int, seed int64, steps int) scenarioResult {
	board := life.New(w, h)
	board.Seed(seed)
	board.Randomize()

	res := scenarioResult{seed: seed, settledAt: -1}
	res.initialPop = board.Population()
	res.peakPop = res.initialPop

	prev := slices.Clone(board.Cells())
	var prev2 []uint8
	for step := 1; step <= steps; step++ {
		board.Advance()
		pop := board.Population()
		if pop > res.peakPop {
			res.peakPop = pop
		}
		cur := board.Cells()
		switch {
		case slices.Equal(cur, prev):
			res.settledAt, res.period = step, 1
		case prev2 != nil && slices.Equal(cur, prev2):
			res.settledAt, res.period = step, 2
		}
		if res.settledAt >= 0 {
			break
		}
		prev2 = append(prev2[:0], prev...)
		prev = append(prev[:0], cur...)
	}
	res.finalPop = board.Population()
	return res
}
