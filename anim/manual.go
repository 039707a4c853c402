package anim

import (
	"slices"
	"sync"
	"time"
)

// ManualTicker is a deterministic Ticker for tests and offline rendering.
// Time only moves when Advance or Step is called, and callbacks run on the
// caller's goroutine.
type ManualTicker struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(time.Duration)
	ticks  int
}

// NewManualTicker returns a ManualTicker with no subscribers.
func NewManualTicker() *ManualTicker {
	return &ManualTicker{subs: make(map[int]func(time.Duration))}
}

// Start registers onTick until the returned CancelFunc is called.
func (m *ManualTicker) Start(onTick func(delta time.Duration)) CancelFunc {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = onTick
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Advance delivers one tick of length d to every active subscriber.
func (m *ManualTicker) Advance(d time.Duration) {
	m.mu.Lock()
	m.ticks++
	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	// Deliver in registration order; a subscriber cancelled by an earlier
	// callback in the same tick is skipped.
	slices.Sort(ids)
	for _, id := range ids {
		m.mu.Lock()
		fn, ok := m.subs[id]
		m.mu.Unlock()
		if ok {
			fn(d)
		}
	}
}

// Step advances total time in n equal ticks.
func (m *ManualTicker) Step(total time.Duration, n int) {
	if n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		m.Advance(total / time.Duration(n))
	}
}

// Active returns the number of registered callbacks.
func (m *ManualTicker) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs)
}

// Ticks returns how many times Advance has been called.
func (m *ManualTicker) Ticks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ticks
}
