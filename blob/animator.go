package blob

import (
	"math"
	"sync"
	"time"

	"github.com/nyxui/nyx"
	"github.com/nyxui/nyx/anim"
)

// State is the lifecycle state of an Animator.
type State int

const (
	// Idle animators have no shape yet.
	Idle State = iota
	// Running animators advance on every tick.
	Running
	// Stopped animators ignore ticks and interaction. Stopped is final.
	Stopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Config selects the animation behaviour. Zero levels select DefaultLevel.
type Config struct {
	Complexity  int  // 1-5, see ParamsFor
	Speed       int  // 1-5, see CycleDuration
	HoverEffect bool // hovering puffs the blob out
	ClickEffect bool // pressing squeezes it in
	Smooth      bool // interpolate between keyframes instead of swapping
}

func (c Config) normalized() Config {
	c.Complexity = ClampLevel(c.Complexity)
	c.Speed = ClampLevel(c.Speed)
	return c
}

// Frame is what a renderer draws for one tick.
type Frame struct {
	Path     string  // SVG path data, 0-100 viewBox
	Rotation float64 // degrees in [0, 360)
	Progress float64 // fraction of the current cycle in [0, 1)
}

// Snapshot is a consistent copy of an Animator's state.
type Snapshot struct {
	State    State
	Previous Shape
	Current  Shape
	Progress float64
	Rotation float64
	Hovered  bool
	Clicked  bool
	Cycles   int // completed morph cycles
	Frame    Frame
}

// Animator morphs a blob continuously. Each tick advances progress by
// delta/cycle; when a cycle completes the current shape becomes the
// previous one, a new target is generated, and the rotation steps by a
// random 15-45 degrees. Without Smooth the frame instead jumps to a fresh
// keyframe six times per cycle.
//
// An Animator is safe for concurrent use: ticks may arrive on a ticker
// goroutine while interaction setters are called elsewhere.
type Animator struct {
	mu sync.Mutex

	cfg   Config
	rnd   Rand
	state State

	previous Shape
	current  Shape
	elapsed  time.Duration
	swapped  time.Duration // since the last direct-swap keyframe
	rotation float64
	hovered  bool
	clicked  bool
	cycles   int
	frame    Frame

	cancel    anim.CancelFunc
	observers []func(Frame)
}

// NewAnimator creates an Idle animator.
func NewAnimator(cfg Config, opts ...Option) *Animator {
	o := animatorOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rnd == nil {
		o.rnd = NewRand(rngSeed())
	}
	return &Animator{
		cfg: cfg.normalized(),
		rnd: o.rnd,
	}
}

// OnFrame registers fn to receive every new frame. fn runs on the goroutine
// that caused the change and must not call back into the Animator's
// setters synchronously.
func (a *Animator) OnFrame(fn func(Frame)) {
	a.mu.Lock()
	a.observers = append(a.observers, fn)
	a.mu.Unlock()
}

// Start generates the initial shape synchronously, so the first frame is
// already complete, and subscribes to t. A nil ticker leaves the animator
// running for manual Advance calls. Start is a no-op unless the animator
// is Idle.
func (a *Animator) Start(t anim.Ticker) {
	a.mu.Lock()
	if a.state != Idle {
		a.mu.Unlock()
		return
	}
	a.current = a.generate()
	a.previous = a.current
	a.elapsed = 0
	a.swapped = 0
	a.state = Running
	a.frame = a.buildFrame()
	fr, obs, cfg := a.frame, a.observersLocked(), a.cfg
	a.mu.Unlock()

	nyx.Logger().Info("blob: animator started",
		"complexity", cfg.Complexity, "speed", cfg.Speed, "smooth", cfg.Smooth)
	notify(obs, fr)

	if t == nil {
		return
	}
	cancel := t.Start(a.Advance)

	a.mu.Lock()
	if a.state == Stopped {
		// Stop won the race with subscription.
		a.mu.Unlock()
		cancel()
		return
	}
	a.cancel = cancel
	a.mu.Unlock()
}

// Stop cancels the tick subscription. No state changes after Stop returns.
func (a *Animator) Stop() {
	a.mu.Lock()
	if a.state == Stopped {
		a.mu.Unlock()
		return
	}
	a.state = Stopped
	cancel := a.cancel
	a.cancel = nil
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	nyx.Logger().Info("blob: animator stopped")
}

// Advance runs one tick of length delta.
func (a *Animator) Advance(delta time.Duration) {
	a.mu.Lock()
	if a.state != Running {
		a.mu.Unlock()
		return
	}
	if delta > 0 {
		a.elapsed += delta
		a.swapped += delta
	}
	cycle := CycleDuration(a.cfg.Speed)
	switch {
	case a.elapsed >= cycle:
		a.wrap()
	case !a.cfg.Smooth && a.swapped >= cycle/swapsPerCycle:
		a.swap()
	}
	a.frame = a.buildFrame()
	fr, obs := a.frame, a.observersLocked()
	a.mu.Unlock()

	notify(obs, fr)
}

// SetHovered updates the hover state, regenerating the shape at once.
func (a *Animator) SetHovered(hovered bool) {
	a.mu.Lock()
	if a.state == Stopped || a.hovered == hovered {
		a.mu.Unlock()
		return
	}
	a.hovered = hovered
	a.refreshAndNotify()
}

// SetClicked updates the pressed state, regenerating the shape at once.
func (a *Animator) SetClicked(clicked bool) {
	a.mu.Lock()
	if a.state == Stopped || a.clicked == clicked {
		a.mu.Unlock()
		return
	}
	a.clicked = clicked
	a.refreshAndNotify()
}

// SetComplexity changes the complexity level, regenerating the shape at once.
func (a *Animator) SetComplexity(complexity int) {
	a.mu.Lock()
	c := ClampLevel(complexity)
	if a.state == Stopped || a.cfg.Complexity == c {
		a.mu.Unlock()
		return
	}
	a.cfg.Complexity = c
	a.refreshAndNotify()
}

// SetSpeed changes the cycle duration. Progress through the current cycle
// keeps its elapsed time.
func (a *Animator) SetSpeed(speed int) {
	a.mu.Lock()
	a.cfg.Speed = ClampLevel(speed)
	a.mu.Unlock()
}

// SetSmooth switches between interpolated and direct-swap animation.
func (a *Animator) SetSmooth(smooth bool) {
	a.mu.Lock()
	a.cfg.Smooth = smooth
	a.mu.Unlock()
}

// Frame returns the most recent frame.
func (a *Animator) Frame() Frame {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frame
}

// Snapshot returns a copy of the full animation state.
func (a *Animator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		State:    a.state,
		Previous: a.previous,
		Current:  a.current,
		Progress: a.progress(),
		Rotation: a.rotation,
		Hovered:  a.hovered,
		Clicked:  a.clicked,
		Cycles:   a.cycles,
		Frame:    a.frame,
	}
}

// Config returns the active configuration.
func (a *Animator) Config() Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// refreshAndNotify must be called with a.mu held; it releases the lock.
// Interaction changes regenerate immediately instead of waiting for the
// cycle boundary, restarting the morph from the new shape.
func (a *Animator) refreshAndNotify() {
	if a.state != Running {
		a.mu.Unlock()
		return
	}
	a.current = a.generate()
	a.previous = a.current
	a.elapsed = 0
	a.swapped = 0
	a.frame = a.buildFrame()
	fr, obs := a.frame, a.observersLocked()
	a.mu.Unlock()

	nyx.Logger().Debug("blob: shape refreshed on interaction")
	notify(obs, fr)
}

// swapsPerCycle is how many keyframes a direct-swap cycle shows.
const swapsPerCycle = 6

func (a *Animator) progress() float64 {
	return math.Min(float64(a.elapsed)/float64(CycleDuration(a.cfg.Speed)), 1)
}

// swap jumps to a new keyframe within the cycle.
func (a *Animator) swap() {
	a.previous = a.current
	a.current = a.generate()
	a.swapped = 0
}

// wrap completes a cycle.
func (a *Animator) wrap() {
	a.swap()
	a.rotation = math.Mod(a.rotation+15+30*a.rnd.draw(), 360)
	a.elapsed = 0
	a.cycles++
	nyx.Logger().Debug("blob: cycle complete", "cycle", a.cycles, "rotation", a.rotation)
}

func (a *Animator) generate() Shape {
	return Generate(
		a.cfg.Complexity,
		a.hovered && a.cfg.HoverEffect,
		a.clicked && a.cfg.ClickEffect,
		a.rnd,
	)
}

func (a *Animator) buildFrame() Frame {
	fr := Frame{Rotation: a.rotation, Progress: a.progress()}
	if a.cfg.Smooth {
		fr.Path = Interpolate(a.previous.Path, a.current.Path, fr.Progress)
	} else {
		fr.Path = a.current.Path
	}
	return fr
}

func (a *Animator) observersLocked() []func(Frame) {
	if len(a.observers) == 0 {
		return nil
	}
	obs := make([]func(Frame), len(a.observers))
	copy(obs, a.observers)
	return obs
}

func notify(obs []func(Frame), fr Frame) {
	for _, fn := range obs {
		fn(fr)
	}
}
