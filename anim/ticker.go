// Package anim provides the periodic tick sources that drive Nyx animations.
//
// A Ticker calls back once per frame with the time elapsed since the
// previous callback and returns a cancel function. Ticks from one Ticker
// never overlap.
package anim

import (
	"sync"
	"time"
)

// CancelFunc stops a running ticker. It is idempotent, never blocks, and
// may be called from inside the tick callback.
type CancelFunc func()

// Ticker schedules repeated frame callbacks.
type Ticker interface {
	Start(onTick func(delta time.Duration)) CancelFunc
}

// FrameTicker is a wall-clock Ticker firing at a fixed frame rate on its
// own goroutine. The delta passed to each callback is measured with the
// monotonic clock, so dropped or late frames are reported accurately.
type FrameTicker struct {
	interval time.Duration
}

// NewFrameTicker returns a ticker firing fps times per second.
// fps <= 0 selects 60.
func NewFrameTicker(fps int) *FrameTicker {
	if fps <= 0 {
		fps = 60
	}
	return &FrameTicker{interval: time.Second / time.Duration(fps)}
}

// Interval returns the nominal time between ticks.
func (f *FrameTicker) Interval() time.Duration {
	return f.interval
}

// Start begins ticking. Each call starts an independent schedule.
func (f *FrameTicker) Start(onTick func(delta time.Duration)) CancelFunc {
	done := make(chan struct{})
	var once sync.Once

	go func() {
		t := time.NewTicker(f.interval)
		defer t.Stop()

		last := time.Now()
		for {
			select {
			case <-done:
				return
			case now := <-t.C:
				// A cancel racing with the ticker must win.
				select {
				case <-done:
					return
				default:
				}
				delta := now.Sub(last)
				last = now
				onTick(delta)
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}
