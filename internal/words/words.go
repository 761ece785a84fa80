// internal/words/words.go
//
// Dictionary loading for the solver.
//
// Responsibilities:
//   - Read a newline-delimited word list from disk (or any reader).
//   - Normalize (trim, lowercase), drop blank lines, collapse duplicates.
//   - Return the words sorted, so every scan over the dictionary is reproducible.
//
// Constraints:
//   • Words must be exactly 5 ASCII letters (a–z); anything else is skipped
//     with a warning.
//   • An empty dictionary is an error.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// ErrEmpty is returned when a dictionary contains no usable words.
var ErrEmpty = errors.New("words: dictionary is empty")

// Load reads the dictionary file at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	out, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return out, nil
}

// Parse reads one word per line from r and returns the sorted, deduplicated set.
func Parse(r io.Reader) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" {
			continue
		}
		if len(w) != game.WordLen || !isAlpha(w) {
			log.Warn().Int("line", line).Str("word", w).Msg("skipping invalid dictionary word")
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}

	sort.Strings(out)
	return out, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
