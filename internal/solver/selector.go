// internal/solver/selector.go
//
// Guess selection.
// Every dictionary word is scored by how evenly it splits the remaining
// candidates across the 243 possible patterns; the lowest score wins.
//
// Scoring for one guess word:
//   mean     = |candidates| / 243
//   variance = Σ (count - mean)² / 243, summed over patterns that occur
//   score    = sqrt(variance), minus 1/|candidates| if the guess is itself a candidate
//
// Notes:
//   - Patterns with zero occurrences add no term even though the divisor counts
//     them. Recommendations depend on this estimator; keep it.
//   - Ties go to the first word in allWords order. Callers pass a sorted
//     dictionary, so results are reproducible.
//   - The per-word scores are independent; WithWorkers fans them out and the
//     argmin is taken afterwards in order, so the answer matches a serial scan.

package solver

import (
	"context"
	"errors"
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

var (
	// ErrNoCandidates is returned when there is nothing left to discriminate.
	ErrNoCandidates = errors.New("solver: candidate pool is empty")
	// ErrNoGuesses is returned when the guess dictionary is empty.
	ErrNoGuesses = errors.New("solver: no guess words")
)

type options struct {
	workers  int
	progress Progress
}

// Option configures SelectBestGuess.
type Option func(*options)

// WithWorkers scores guess words on n goroutines. n <= 1 scans serially.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithProgress reports each scored guess word to p.
func WithProgress(p Progress) Option {
	return func(o *options) {
		if p != nil {
			o.progress = p
		}
	}
}

// SelectBestGuess returns the word in allWords with the lowest Score against
// candidates, together with that score.
func SelectBestGuess(ctx context.Context, candidates, allWords []string, opts ...Option) (string, float64, error) {
	if len(candidates) == 0 {
		return "", 0, ErrNoCandidates
	}
	if len(allWords) == 0 {
		return "", 0, ErrNoGuesses
	}

	o := options{workers: 1, progress: NoProgress}
	for _, fn := range opts {
		fn(&o)
	}

	scores := make([]float64, len(allWords))
	tr := newTracker(o.progress, len(allWords))

	if o.workers <= 1 {
		for i, w := range allWords {
			if err := ctx.Err(); err != nil {
				return "", 0, err
			}
			scores[i] = Score(w, candidates)
			tr.step()
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.workers)
		for i, w := range allWords {
			i, w := i, w
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				scores[i] = Score(w, candidates)
				tr.step()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return "", 0, err
		}
	}

	best := argmin(scores)
	return allWords[best], scores[best], nil
}

// Score rates guess against candidates. Lower is better.
func Score(guess string, candidates []string) float64 {
	var table [game.NumPatterns]int
	for _, actual := range candidates {
		table[game.CalcGuessMatch(guess, actual).Index()]++
	}

	n := float64(len(candidates))
	mean := n / game.NumPatterns

	var sum float64
	for _, count := range table {
		if count == 0 {
			continue
		}
		d := float64(count) - mean
		sum += d * d
	}
	std := math.Sqrt(sum / game.NumPatterns)

	if table[game.WinningMatch.Index()] > 0 {
		std -= 1 / n
	}
	return std
}

// argmin returns the index of the first smallest key. keys must be non-empty.
func argmin[K constraints.Ordered](keys []K) int {
	best := 0
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[best] {
			best = i
		}
	}
	return best
}
