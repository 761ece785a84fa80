// internal/session/session.go
//
// Solver session: the guess → feedback → narrow → suggest loop shared by the
// terminal, HTTP and evaluation front ends.
// Responsibilities:
//   - Start from a fixed opening suggestion over the full dictionary.
//   - Apply feedback for the current suggestion.
//   - Track state transitions: playing → won, or playing → stuck when no
//     dictionary word is consistent with the feedback.
//
// Notes:
//   - The dictionary is shared and never mutated; the candidate pool only shrinks.
//   - Each session carries its own mutex, so HTTP handlers may share one.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// DefaultOpening is the first suggestion before any feedback is known.
const DefaultOpening = "rales"

// State is the coarse lifecycle of a session.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateStuck   State = "stuck"
)

var (
	// ErrFinished is returned when feedback arrives after the session ended.
	ErrFinished = errors.New("session finished")
	// ErrNoConsistentWord is returned when feedback rules out every word.
	ErrNoConsistentWord = errors.New("no dictionary word matches the feedback")
)

// Session holds the state of one solve. Its progress is only reachable
// through Snapshot; ID never changes after New.
type Session struct {
	ID string // Unique session identifier (random hex string).

	mu         sync.Mutex
	suggestion string   // word the player should enter next
	score      float64  // selector score of suggestion (0 for the opening)
	candidates []string // words still consistent with all feedback
	turns      int      // feedback lines applied so far
	state      State
	onNarrow   func(remaining int)

	dict []string
	opts []solver.Option
}

// Snapshot is a point-in-time copy of a session's progress.
type Snapshot struct {
	ID         string
	Suggestion string
	Score      float64
	Remaining  int
	Turns      int
	State      State
}

// New starts a session over dict. An empty opening falls back to
// DefaultOpening. opts are forwarded to every selector call.
func New(dict []string, opening string, opts ...solver.Option) *Session {
	if opening == "" {
		opening = DefaultOpening
	}
	return &Session{
		ID:         randomID(),
		suggestion: opening,
		candidates: dict,
		state:      StatePlaying,
		dict:       dict,
		opts:       opts,
	}
}

// OnNarrow registers fn to be called with the size of the narrowed pool,
// after filtering and before the selector scan starts. fn runs with the
// session locked and must not call back into the session.
func (s *Session) OnNarrow(fn func(remaining int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onNarrow = fn
}

// Apply records the feedback received for the current suggestion.
//
// An all-green pattern ends the session as won without narrowing. Otherwise the
// candidates are filtered and a new suggestion selected. If nothing survives the
// filter, the session becomes stuck and ErrNoConsistentWord is returned.
func (s *Session) Apply(ctx context.Context, feedback game.GuessMatch) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying {
		return s.state, ErrFinished
	}

	if feedback.IsWin() {
		s.turns++
		s.state = StateWon
		return s.state, nil
	}

	remaining := solver.Filter(s.suggestion, feedback, s.candidates)
	if len(remaining) == 0 {
		s.turns++
		s.candidates = remaining
		s.state = StateStuck
		return s.state, ErrNoConsistentWord
	}
	if s.onNarrow != nil {
		s.onNarrow(len(remaining))
	}

	word, score, err := solver.SelectBestGuess(ctx, remaining, s.dict, s.opts...)
	if err != nil {
		// leave the session as it was so the caller can retry the same feedback
		return s.state, fmt.Errorf("select guess: %w", err)
	}

	s.turns++
	s.candidates = remaining
	s.suggestion = word
	s.score = score
	return s.state, nil
}

// Snapshot returns a consistent copy of the session's public state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:         s.ID,
		Suggestion: s.suggestion,
		Score:      s.score,
		Remaining:  len(s.candidates),
		Turns:      s.turns,
		State:      s.state,
	}
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
