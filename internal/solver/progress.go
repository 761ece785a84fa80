// internal/solver/progress.go
//
// Progress reporting for the guess scan. Purely cosmetic: nothing here feeds
// back into which word is selected.

package solver

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Progress receives (done, total) after each guess word is scored.
// done increases by one per call, from 1 to total.
type Progress interface {
	Step(done, total int)
}

// ProgressFunc adapts a plain function to Progress.
type ProgressFunc func(done, total int)

func (f ProgressFunc) Step(done, total int) { f(done, total) }

// NoProgress discards all reports.
var NoProgress Progress = ProgressFunc(func(int, int) {})

// Bar draws a terminal progress bar. A fresh bar starts each time a scan
// reports done == 1, so one Bar can follow a whole game.
type Bar struct {
	w    io.Writer
	desc string
	bar  *progressbar.ProgressBar
}

// NewBar returns a Bar writing to w.
func NewBar(w io.Writer, description string) *Bar {
	return &Bar{w: w, desc: description}
}

func (b *Bar) Step(done, total int) {
	if b.bar == nil || done == 1 {
		b.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(b.w),
			progressbar.OptionSetDescription(b.desc),
			progressbar.OptionSetWidth(20),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionOnCompletion(func() { fmt.Fprintln(b.w) }),
		)
	}
	_ = b.bar.Set(done)
}

// tracker serializes reports from concurrent workers.
type tracker struct {
	mu    sync.Mutex
	p     Progress
	done  int
	total int
}

func newTracker(p Progress, total int) *tracker {
	return &tracker{p: p, total: total}
}

func (t *tracker) step() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done++
	t.p.Step(t.done, t.total)
}
