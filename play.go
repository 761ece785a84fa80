// play.go
//
// Interactive terminal loop: suggest a word, read the color feedback, narrow,
// suggest again, until the player reports all green.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

const banner = `WORDLE SOLVER
I'll tell you what word to play. You'll reply back with the color match result.
Green tiles are 'g'. Yellow tiles are 'y'. Miss tiles are '-'.
For example, a match result with the first two as green, the 3rd as yellow,
and the others as blank, would look like:
ggy--

Ready to play?

`

// runPlay drives one session over in/out. It returns nil once the session
// ends (won, or no consistent word left) and an error if input cannot be read.
// A line of the wrong length is reported and re-prompted without using a turn.
func runPlay(ctx context.Context, in io.Reader, out io.Writer, dict []string, cfg config, progress solver.Progress) error {
	sess := session.New(dict, cfg.Opening, solver.WithWorkers(cfg.Workers), solver.WithProgress(progress))
	sess.OnNarrow(func(remaining int) {
		fmt.Fprintf(out, "Word pool reduced to %d\n", remaining)
	})
	r := bufio.NewReader(in)

	fmt.Fprint(out, banner)
	for {
		snap := sess.Snapshot()
		fmt.Fprintf(out, "You should play the word '%s'.\n", snap.Suggestion)
		fmt.Fprintln(out, "What was your color match result?")

		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return fmt.Errorf("read feedback: %w", err)
		}

		fb, err := game.ParseFeedback(line)
		if err != nil {
			fmt.Fprintf(out, "Input must be %d characters long. Length was %d. Try again...\n",
				game.WordLen, len(strings.TrimSpace(line)))
			continue
		}
		fmt.Fprintln(out, game.Colorize(snap.Suggestion, fb))

		state, err := sess.Apply(ctx, fb)
		switch {
		case errors.Is(err, session.ErrNoConsistentWord):
			fmt.Fprintln(out, "No word in the dictionary matches all of that feedback.")
			return nil
		case err != nil:
			return err
		case state == session.StateWon:
			fmt.Fprintln(out, "Yippie! You got it!")
			return nil
		}

		snap = sess.Snapshot()
		log.Debug().Str("suggestion", snap.Suggestion).Float64("score", snap.Score).Msg("next guess selected")
	}
}
