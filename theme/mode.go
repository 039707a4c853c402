package theme

import (
	"sync"

	"github.com/nyxui/nyx"
)

// Mode is the page color scheme.
type Mode int

const (
	// Light is the default scheme.
	Light Mode = iota
	// Dark scheme.
	Dark
)

// String returns "light" or "dark".
func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Shadow is the color of extrusion shadows in this mode.
func (m Mode) Shadow() nyx.RGBA {
	if m == Dark {
		return nyx.Black.WithAlpha(0.55)
	}
	return nyx.Black.WithAlpha(0.3)
}

// Highlight is the color of extrusion highlights in this mode.
func (m Mode) Highlight() nyx.RGBA {
	if m == Dark {
		return nyx.White.WithAlpha(0.12)
	}
	return nyx.White.WithAlpha(0.35)
}

// Context carries the current Mode to components. The host application
// owns it and calls SetMode; components read Mode or Subscribe instead of
// probing the environment themselves.
type Context struct {
	mu     sync.Mutex
	mode   Mode
	nextID int
	subs   map[int]func(Mode)
}

// NewContext returns a Context starting in mode.
func NewContext(mode Mode) *Context {
	return &Context{mode: mode, subs: make(map[int]func(Mode))}
}

// Mode returns the current mode. A nil Context is Light.
func (c *Context) Mode() Mode {
	if c == nil {
		return Light
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SetMode changes the mode and notifies subscribers if it changed.
func (c *Context) SetMode(m Mode) {
	c.mu.Lock()
	if c.mode == m {
		c.mu.Unlock()
		return
	}
	c.mode = m
	fns := make([]func(Mode), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(m)
	}
}

// Subscribe calls fn on every mode change until the returned function is
// called.
func (c *Context) Subscribe(fn func(Mode)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}
