package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// redrawEvery limits how often the progress line is repainted.
const redrawEvery = 100 * time.Millisecond

// Interactive reports whether both stdout and stderr are terminals.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// ShouldShowProgress decides whether to draw progress on stderr. An explicit
// setting wins in both directions; unset means only when interactive.
func ShouldShowProgress(setting *bool, interactive bool) bool {
	if setting != nil {
		return *setting
	}
	return interactive
}

// Progress draws a single "[progress] n/total (p%) 1.2s" line. It is safe for
// concurrent use. A disabled Progress still counts.
type Progress struct {
	mu      sync.Mutex
	w       io.Writer
	total   int
	done    int
	start   time.Time
	drawn   time.Time
	enabled bool
}

// NewProgress writes to w, or os.Stderr when w is nil.
func NewProgress(w io.Writer, total int, enabled bool) *Progress {
	if w == nil {
		w = os.Stderr
	}
	return &Progress{w: w, total: total, start: time.Now(), enabled: enabled}
}

// Advance records one finished unit of work.
func (p *Progress) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if !p.enabled {
		return
	}
	now := time.Now()
	if p.done < p.total && !p.drawn.IsZero() && now.Sub(p.drawn) < redrawEvery {
		return
	}
	p.drawn = now
	elapsed := now.Sub(p.start).Round(100 * time.Millisecond)
	fmt.Fprintf(p.w, "\r\033[K[progress] %d/%d (%d%%) %s", p.done, p.total, percent(p.done, p.total), elapsed)
}

// Count returns the number of finished units.
func (p *Progress) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

// Done clears the line.
func (p *Progress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled && !p.drawn.IsZero() {
		fmt.Fprint(p.w, "\r\033[K")
	}
}

func percent(a, b int) int {
	if b <= 0 || a >= b {
		return 100
	}
	return a * 100 / b
}
