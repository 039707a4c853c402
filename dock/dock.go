// Package dock implements a magnifying icon dock: icons near the pointer
// grow, and every icon eases toward its target size on a critically damped
// spring.
package dock

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/nyxui/nyx"
	"github.com/nyxui/nyx/anim"
)

// Defaults.
const (
	BaseSize  = 48.0
	Spacing   = 8.0
	MaxScale  = 1.8
	Distance  = 150.0
	FPS       = 60
	Frequency = 6.0
	Damping   = 1.0
)

// Option configures a Dock.
type Option func(*Dock)

// WithBaseSize sets the resting icon edge in pixels.
func WithBaseSize(px float64) Option {
	return func(d *Dock) {
		if px > 0 {
			d.base = px
		}
	}
}

// WithSpacing sets the gap between icons in pixels.
func WithSpacing(px float64) Option {
	return func(d *Dock) {
		if px >= 0 {
			d.spacing = px
		}
	}
}

// WithMaxScale sets the scale of an icon directly under the pointer.
func WithMaxScale(s float64) Option {
	return func(d *Dock) {
		if s >= 1 {
			d.maxScale = s
		}
	}
}

// WithDistance sets how far from the pointer, in pixels, icons still grow.
func WithDistance(px float64) Option {
	return func(d *Dock) {
		if px > 0 {
			d.distance = px
		}
	}
}

// WithSpring sets the spring's angular frequency and damping ratio.
func WithSpring(frequency, damping float64) Option {
	return func(d *Dock) {
		d.frequency, d.damping = frequency, damping
	}
}

// Slot is the placement of one icon along the dock.
type Slot struct {
	X    float64 // left edge
	Size float64 // edge length
}

// Dock tracks icon scales. It is safe for concurrent use.
type Dock struct {
	mu sync.Mutex

	base, spacing      float64
	maxScale, distance float64
	frequency, damping float64
	spring             harmonica.Spring
	frame              time.Duration
	pending            time.Duration
	pos, vel           []float64
	pointer            float64
	hovering           bool
}

// New creates a dock of n icons at rest.
func New(n int, opts ...Option) *Dock {
	if n < 0 {
		n = 0
	}
	d := &Dock{
		base:      BaseSize,
		spacing:   Spacing,
		maxScale:  MaxScale,
		distance:  Distance,
		frequency: Frequency,
		damping:   Damping,
		frame:     time.Second / FPS,
		pos:       make([]float64, n),
		vel:       make([]float64, n),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.spring = harmonica.NewSpring(harmonica.FPS(FPS), d.frequency, d.damping)
	for i := range d.pos {
		d.pos[i] = 1
	}
	return d
}

// Len returns the number of icons.
func (d *Dock) Len() int {
	return len(d.pos)
}

// SetPointer moves the pointer to x, in dock pixels from the left edge.
func (d *Dock) SetPointer(x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		nyx.Logger().Debug("dock: ignoring non-finite pointer", "x", x)
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pointer = x
	d.hovering = true
}

// Leave removes the pointer; every icon returns to scale 1.
func (d *Dock) Leave() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hovering = false
}

// Targets returns the scale each icon is moving toward.
func (d *Dock) Targets() []float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]float64, len(d.pos))
	for i := range out {
		out[i] = d.targetLocked(i)
	}
	return out
}

// targetLocked measures distance against the resting layout so growing
// icons do not shift their own targets.
func (d *Dock) targetLocked(i int) float64 {
	if !d.hovering {
		return 1
	}
	center := float64(i)*(d.base+d.spacing) + d.base/2
	return TargetScale(math.Abs(d.pointer-center), d.distance, d.maxScale)
}

// TargetScale is 1 + (max-1)·cos²(π/2·dist/reach) inside reach, else 1.
func TargetScale(dist, reach, maxScale float64) float64 {
	if dist >= reach {
		return 1
	}
	c := math.Cos(math.Pi / 2 * dist / reach)
	return 1 + (maxScale-1)*c*c
}

// Update advances every icon one spring frame.
func (d *Dock) Update() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stepLocked()
}

func (d *Dock) stepLocked() {
	for i := range d.pos {
		d.pos[i], d.vel[i] = d.spring.Update(d.pos[i], d.vel[i], d.targetLocked(i))
	}
}

// Advance runs as many spring frames as fit in delta, carrying the
// remainder to the next call.
func (d *Dock) Advance(delta time.Duration) {
	if delta <= 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending += delta
	for d.pending >= d.frame {
		d.pending -= d.frame
		d.stepLocked()
	}
}

// Attach drives Advance from t until the returned function is called.
func (d *Dock) Attach(t anim.Ticker) anim.CancelFunc {
	return t.Start(d.Advance)
}

// Scales returns the current icon scales.
func (d *Dock) Scales() []float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]float64, len(d.pos))
	copy(out, d.pos)
	return out
}

// Layout places icons left to right at their current sizes, keeping the
// spacing between them.
func (d *Dock) Layout() []Slot {
	d.mu.Lock()
	defer d.mu.Unlock()
	slots := make([]Slot, len(d.pos))
	x := 0.0
	for i, s := range d.pos {
		size := d.base * s
		slots[i] = Slot{X: x, Size: size}
		x += size + d.spacing
	}
	return slots
}

// Width is the total dock width at current sizes.
func (d *Dock) Width() float64 {
	slots := d.Layout()
	if len(slots) == 0 {
		return 0
	}
	last := slots[len(slots)-1]
	return last.X + last.Size
}
