// internal/game/types.go
//
// Core type definitions for the pattern engine.
// Defines:
//   - LetterColor: per-letter feedback (gray/yellow/green).
//   - GuessMatch: the five-tile pattern produced by one guess.

package game

import "errors"

const (
	// WordLen is the fixed number of letters in every word.
	WordLen = 5
	// NumPatterns is the number of distinct GuessMatch values (3^WordLen).
	NumPatterns = 243
)

// LetterColor is the feedback for a single letter of a guess.
//   - Gray:   letter absent (after running-count accounting).
//   - Yellow: letter present elsewhere in the word.
//   - Green:  letter in the exact position.
type LetterColor uint8

const (
	Gray LetterColor = iota
	Yellow
	Green
)

// GuessMatch holds one LetterColor per letter position.
// It is comparable and therefore usable as a map key.
type GuessMatch [WordLen]LetterColor

// WinningMatch is the all-green pattern, the only one that ends a game.
var WinningMatch = GuessMatch{Green, Green, Green, Green, Green}

// ErrFeedbackLength is returned when typed feedback is not WordLen characters.
var ErrFeedbackLength = errors.New("feedback must be 5 characters")

// IsWin reports whether every tile is green.
func (m GuessMatch) IsWin() bool { return m == WinningMatch }

// Index returns the base-3 code of m in [0, NumPatterns).
// Position 0 is the most significant digit.
func (m GuessMatch) Index() int {
	n := 0
	for _, c := range m {
		n = n*3 + int(c)
	}
	return n
}

// String renders m in the feedback alphabet: g, y and -.
func (m GuessMatch) String() string {
	var b [WordLen]byte
	for i, c := range m {
		switch c {
		case Green:
			b[i] = 'g'
		case Yellow:
			b[i] = 'y'
		default:
			b[i] = '-'
		}
	}
	return string(b[:])
}
