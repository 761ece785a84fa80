// internal/solver/filter.go
//
// Candidate pool narrowing.

package solver

import "github.com/robalobadob/wordle/apps/go-solver/internal/game"

// Filter returns the words w for which playing chosen against w would have
// produced observed. Input order is preserved and the result never grows;
// an empty result means no word is consistent with the feedback.
func Filter(chosen string, observed game.GuessMatch, words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if game.CalcGuessMatch(chosen, w) == observed {
			out = append(out, w)
		}
	}
	return out
}
