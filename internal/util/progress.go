package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

func isTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ShouldShowProgress reports whether a progress line belongs on stderr.
// Output piped elsewhere still gets progress when stderr is a terminal.
func ShouldShowProgress(force, no bool) bool {
	if no {
		return false
	}
	if force {
		return true
	}
	return isTTY(os.Stderr)
}

// Progress は複数ファイル処理の進捗を stderr の 1 行に表示します。
// Advance は複数のゴルーチンから呼び出せます。
type Progress struct {
	mu      sync.Mutex
	w       io.Writer
	est     *estimator
	now     func() time.Time
	enabled bool
}

func NewProgress(total int, enabled bool) *Progress {
	return &Progress{w: os.Stderr, est: newEstimator(total, time.Now()), now: time.Now, enabled: enabled}
}

// Advance marks one more input as finished.
func (p *Progress) Advance() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.est.advance(p.now())
	p.render()
}

func (p *Progress) render() {
	e := p.est
	rate, eta, p90 := "--/s", "--:--:--", ""
	if e.warm() {
		rate = fmt.Sprintf("%.1f/s", e.ema)
		if d50, d90 := e.eta(); d50 > 0 {
			eta = formatETA(d50)
			p90 = fmt.Sprintf(" (P90 %s)", formatETA(d90))
		}
	}
	// clear line and print
	fmt.Fprintf(p.w, "\r\033[K[progress] %d/%d files (%d%%) %s ETA %s%s",
		e.done, e.total, percent(e.done, e.total), rate, eta, p90)
}

func (p *Progress) Done() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.w, "\r\033[K")
}

func percent(a, b int) int {
	if b == 0 || a >= b {
		return 100
	}
	return int(float64(a) * 100 / float64(b))
}
