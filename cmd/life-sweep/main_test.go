package main

import "testing"

func TestRunScenarioIsDeterministic(t *testing.T) {
	a := runScenario(24, 16, 7, 300)
	b := runScenario(24, 16, 7, 300)
	if a != b {
		t.Fatalf("same seed gave %+v and %+v", a, b)
	}
	if a.initialPop == 0 {
		t.Fatal("randomized board was empty")
	}
	if a.peakPop < a.initialPop || a.peakPop < a.finalPop {
		t.Fatalf("peak %d below initial %d or final %d", a.peakPop, a.initialPop, a.finalPop)
	}
}

func TestRunScenarioSettledBoardReportsPeriod(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		res := runScenario(16, 12, seed, 1000)
		if res.settledAt < 0 {
			continue
		}
		if res.period != 1 && res.period != 2 {
			t.Fatalf("seed %d settled with period %d", seed, res.period)
		}
		if res.settledAt > 1000 {
			t.Fatalf("seed %d settled at %d beyond step budget", seed, res.settledAt)
		}
	}
}
