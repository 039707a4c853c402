// Package render draws blob frames as raster images or SVG documents.
//
// Coordinates follow the blob's 0-100 viewBox; the Renderer scales them to
// the pixel size of the Style. A frame is drawn in layers, back to front:
// glow, 3D shadow copy, 3D highlight copy, gradient fill.
package render

import (
	"image"
	"sync"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/nyxui/nyx"
	"github.com/nyxui/nyx/anim"
	"github.com/nyxui/nyx/blob"
	"github.com/nyxui/nyx/internal/filter"
	"github.com/nyxui/nyx/theme"
)

// ViewBox is the edge length of the blob coordinate space.
const ViewBox = 100

// 3D extrusion offsets in viewBox units.
var (
	shadowOffset    = nyx.Pt(3, 3)
	highlightOffset = nyx.Pt(-1.5, -1.5)
)

// glowAlpha is the opacity of the glow tint before pulsing.
const glowAlpha = 0.6

// Option configures a Renderer.
type Option func(*Renderer)

// WithContext makes the Renderer follow ctx's color mode instead of
// Style.Mode.
func WithContext(ctx *theme.Context) Option {
	return func(r *Renderer) {
		r.ctx = ctx
	}
}

// Renderer rasterizes blob frames. It is safe for concurrent use.
type Renderer struct {
	mu    sync.Mutex
	style Style
	pulse *Pulse
	ctx   *theme.Context
}

// New creates a Renderer for style.
func New(style Style, opts ...Option) *Renderer {
	r := &Renderer{
		style: style.normalized(),
		pulse: NewPulse(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Style returns the normalized style.
func (r *Renderer) Style() Style {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.style
}

// Advance moves the pulse animation forward. It has no visible effect
// unless Style.Pulse is set.
func (r *Renderer) Advance(dt time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pulse.Advance(dt)
}

// SetPulse turns the pulse on or off. Turning it on restarts the pulse
// from full opacity.
func (r *Renderer) SetPulse(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if on && !r.style.Pulse {
		r.pulse.Reset()
	}
	r.style.Pulse = on
}

// Attach drives Advance from t until the returned function is called.
func (r *Renderer) Attach(t anim.Ticker) anim.CancelFunc {
	return t.Start(r.Advance)
}

// Opacity is the fill opacity the next Draw will use.
func (r *Renderer) Opacity() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opacityLocked()
}

func (r *Renderer) opacityLocked() float64 {
	if !r.style.Pulse {
		return 1
	}
	return r.pulse.Opacity()
}

// Draw renders f on a transparent square image of the style's size.
// A frame whose path cannot be parsed yields a blank image.
func (r *Renderer) Draw(f blob.Frame) *image.RGBA {
	r.mu.Lock()
	style := r.style
	opacity := r.opacityLocked()
	r.mu.Unlock()
	if r.ctx != nil {
		style.Mode = r.ctx.Mode()
	}

	px := style.Size.Pixels()
	dst := image.NewRGBA(image.Rect(0, 0, px, px))
	if f.Path == "" {
		return dst
	}
	path, err := nyx.ParsePath(f.Path)
	if err != nil {
		nyx.Logger().Debug("render: skipping frame", "err", err)
		return dst
	}

	scale := float64(px) / ViewBox
	m := nyx.Scale(scale, scale).Multiply(nyx.RotateAbout(f.Rotation, ViewBox/2, ViewBox/2))

	if style.Glow {
		mask := image.NewAlpha(dst.Bounds())
		fill(mask, path, m, image.Opaque)
		filter.Glow{
			Radius: style.glowRadius(),
			Color:  style.Theme.Accent().WithAlpha(glowAlpha * opacity).NRGBA(),
		}.Apply(dst, mask)
	}

	if style.Effect3D {
		for _, layer := range []struct {
			offset nyx.Point
			color  nyx.RGBA
		}{
			{shadowOffset, style.Mode.Shadow()},
			{highlightOffset, style.Mode.Highlight()},
		} {
			c := layer.color
			c.A *= opacity
			lm := nyx.Scale(scale, scale).
				Multiply(nyx.Translate(layer.offset.X, layer.offset.Y)).
				Multiply(nyx.RotateAbout(f.Rotation, ViewBox/2, ViewBox/2))
			fill(dst, path, lm, image.NewUniform(c.NRGBA()))
		}
	}

	g := nyx.NewLinearGradient(0, 0, float64(px), float64(px), style.Theme.Stops()...)
	g.Opacity = opacity
	fill(dst, path, m, g)
	return dst
}

// fill rasterizes path under m and composites src through it onto dst.
func fill(dst draw.Image, path *nyx.Path, m nyx.Matrix, src image.Image) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	path.AddTo(z, m)
	z.Draw(dst, b, src, image.Point{})
}
