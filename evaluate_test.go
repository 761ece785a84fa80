package main

import (
	"testing"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func TestRunEvaluate_SolvesEveryTarget(t *testing.T) {
	cfg := config{Opening: "rales", Workers: 2}
	res, err := runEvaluate(testContext(t), testDict, cfg, solver.NoProgress)
	if err != nil {
		t.Fatalf("runEvaluate: %v", err)
	}
	if res.Games != len(testDict) || res.Solved != len(testDict) || res.Unsolved != 0 {
		t.Errorf("result = %+v, want all %d solved", res, len(testDict))
	}
	// rales is not in the dictionary, so every game needs at least two guesses
	if res.AvgTurns() < 2 {
		t.Errorf("AvgTurns = %v, want >= 2", res.AvgTurns())
	}
}

func TestRunEvaluate_Limit(t *testing.T) {
	cfg := config{Opening: "crane", Workers: 1, EvalLimit: 2}
	var steps int
	res, err := runEvaluate(testContext(t), testDict, cfg, solver.ProgressFunc(func(done, total int) {
		steps++
		if total != 2 {
			t.Errorf("total = %d, want 2", total)
		}
	}))
	if err != nil {
		t.Fatalf("runEvaluate: %v", err)
	}
	if res.Games != 2 || steps != 2 {
		t.Errorf("games = %d, steps = %d, want 2 and 2", res.Games, steps)
	}
}

func TestSelfPlay_OpeningIsTarget(t *testing.T) {
	turns, err := selfPlay(testContext(t), testDict, "crane", config{Opening: "crane", Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	if turns != 1 {
		t.Errorf("turns = %d, want 1", turns)
	}
}
