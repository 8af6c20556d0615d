package util

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// rateWindow keeps the last size per-input rates.
type rateWindow struct {
	size   int
	values []float64
}

func newRateWindow(size int) *rateWindow {
	if size <= 0 {
		size = 1
	}
	return &rateWindow{size: size}
}

func (w *rateWindow) add(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	if len(w.values) < w.size {
		w.values = append(w.values, v)
		return
	}
	copy(w.values, w.values[1:])
	w.values[len(w.values)-1] = v
}

// quantile interpolates linearly between the two nearest ranks.
func (w *rateWindow) quantile(q float64) float64 {
	if len(w.values) == 0 {
		return 0
	}
	cp := append([]float64(nil), w.values...)
	sort.Float64s(cp)
	if q <= 0 {
		return cp[0]
	}
	if q >= 1 {
		return cp[len(cp)-1]
	}
	pos := q * float64(len(cp)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return cp[lower]
	}
	weight := pos - float64(lower)
	return cp[lower]*(1-weight) + cp[upper]*weight
}

const (
	emaAlpha      = 0.2
	rateWindowLen = 60
	// below this many finished inputs the ETA is not shown
	warmupInputs = 3
	slowFallback = 0.6
)

// estimator tracks inputs per second. Not safe for concurrent use; Progress
// serializes access.
type estimator struct {
	total  int
	done   int
	last   time.Time
	ema    float64
	window *rateWindow
}

func newEstimator(total int, now time.Time) *estimator {
	return &estimator{total: total, last: now, window: newRateWindow(rateWindowLen)}
}

func (e *estimator) advance(now time.Time) {
	if now.Before(e.last) {
		now = e.last
	}
	dt := now.Sub(e.last).Seconds()
	if dt <= 0 {
		dt = 1e-6
	}
	e.done++
	instant := 1 / dt
	if e.ema == 0 {
		e.ema = instant
	} else {
		e.ema = emaAlpha*instant + (1-emaAlpha)*e.ema
	}
	e.window.add(instant)
	e.last = now
}

func (e *estimator) warm() bool { return e.done >= warmupInputs }

// eta returns the median and pessimistic (P90) estimates of the remaining
// time. Both are zero while warming up.
func (e *estimator) eta() (p50, p90 time.Duration) {
	remain := e.total - e.done
	if !e.warm() || remain <= 0 {
		return 0, 0
	}
	rate50 := e.window.quantile(0.5)
	if rate50 <= 0 {
		rate50 = e.ema
	}
	rate10 := e.window.quantile(0.1)
	if rate10 <= 0 {
		rate10 = rate50 * slowFallback
	}
	return durationFrom(float64(remain), rate50), durationFrom(float64(remain), rate10)
}

func durationFrom(count, rate float64) time.Duration {
	if rate <= 0 {
		return 0
	}
	seconds := count / rate
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0
	}
	if seconds > float64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(seconds * float64(time.Second))
}

func formatETA(d time.Duration) string {
	total := int(math.Round(d.Seconds()))
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	if hours > 99 {
		hours = 99
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, (total%3600)/60, total%60)
}
