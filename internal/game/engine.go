// internal/game/engine.go
//
// Pattern engine for the solver.
// Responsibilities:
//   - Compute the feedback pattern a guess would receive against an answer.
//   - Parse typed feedback ("gy--g") into a GuessMatch.
//   - Render a word with colored tiles for the terminal.
//
// Notes:
//   - CalcGuessMatch is NOT the classic two-pass Wordle marker. It compares the
//     running count of a letter in the guess against the letter's total count in
//     the answer. Every candidate filter and score depends on this exact rule.
//   - Inputs are assumed to be lowercase a–z, WordLen bytes long.
package game

import (
	"fmt"
	"strings"

	"github.com/TwiN/go-color"
)

// CalcGuessMatch returns the pattern produced by playing guess when the answer
// is actual.
//
// For each position i, left to right:
//   - bump the running count of guess[i];
//   - Green if actual[i] == guess[i];
//   - else Yellow if the total count of guess[i] in actual is at least the
//     running count;
//   - else Gray.
func CalcGuessMatch(guess, actual string) GuessMatch {
	var actualCount, guessCount [26]int
	var m GuessMatch

	for i := 0; i < WordLen; i++ {
		actualCount[idx(actual[i])]++
	}

	for i := 0; i < WordLen; i++ {
		j := idx(guess[i])
		guessCount[j]++

		if actual[i] == guess[i] {
			m[i] = Green
		} else if actualCount[j] >= guessCount[j] {
			m[i] = Yellow
		}
	}
	return m
}

// ParseFeedback converts a typed feedback line into a GuessMatch.
// Surrounding whitespace is ignored. 'g' is green, 'y' is yellow and any other
// character (including '-') is gray.
func ParseFeedback(s string) (GuessMatch, error) {
	var m GuessMatch
	s = strings.TrimSpace(s)
	if len(s) != WordLen {
		return m, fmt.Errorf("%w: got %d", ErrFeedbackLength, len(s))
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'g':
			m[i] = Green
		case 'y':
			m[i] = Yellow
		}
	}
	return m, nil
}

// Colorize renders word with one colored tile per letter.
func Colorize(word string, m GuessMatch) string {
	var b strings.Builder
	for i, r := range word {
		if i >= WordLen {
			break
		}
		tile := " " + strings.ToUpper(string(r)) + " "
		switch m[i] {
		case Green:
			b.WriteString(color.Ize(color.Green, tile))
		case Yellow:
			b.WriteString(color.Ize(color.Yellow, tile))
		default:
			b.WriteString(color.Ize(color.Gray, tile))
		}
	}
	return b.String()
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(b byte) int { return int(b - 'a') }
