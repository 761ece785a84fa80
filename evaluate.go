// evaluate.go
//
// Self-play benchmark: every target word is solved with the engine itself
// standing in for the player, and the turn counts are aggregated.

package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// maxEvalTurns bounds a single self-play game.
const maxEvalTurns = 20

type evalResult struct {
	Games      int
	Solved     int
	TotalTurns int // summed over solved games
	WithinSix  int
	Unsolved   int
}

// AvgTurns is the mean number of guesses over solved games.
func (r evalResult) AvgTurns() float64 {
	if r.Solved == 0 {
		return 0
	}
	return float64(r.TotalTurns) / float64(r.Solved)
}

// runEvaluate solves the first cfg.EvalLimit dictionary words (all if 0).
func runEvaluate(ctx context.Context, dict []string, cfg config, progress solver.Progress) (evalResult, error) {
	targets := dict
	if cfg.EvalLimit > 0 && cfg.EvalLimit < len(dict) {
		targets = dict[:cfg.EvalLimit]
	}

	var res evalResult
	for i, target := range targets {
		turns, err := selfPlay(ctx, dict, target, cfg)
		if err != nil {
			return res, err
		}
		res.Games++
		if turns == 0 {
			res.Unsolved++
			log.Warn().Str("target", target).Msg("not solved")
		} else {
			res.Solved++
			res.TotalTurns += turns
			if turns <= 6 {
				res.WithinSix++
			}
		}
		progress.Step(i+1, len(targets))
	}
	return res, nil
}

// selfPlay returns the number of guesses needed to reach target, or 0 if the
// game did not finish within maxEvalTurns.
func selfPlay(ctx context.Context, dict []string, target string, cfg config) (int, error) {
	sess := session.New(dict, cfg.Opening, solver.WithWorkers(cfg.Workers))
	for t := 0; t < maxEvalTurns; t++ {
		fb := game.CalcGuessMatch(sess.Snapshot().Suggestion, target)
		state, err := sess.Apply(ctx, fb)
		if err != nil {
			return 0, err
		}
		if state == session.StateWon {
			return sess.Snapshot().Turns, nil
		}
	}
	return 0, nil
}
