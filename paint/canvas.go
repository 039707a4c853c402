// Package paint implements a freehand raster drawing canvas with brush and
// eraser tools, a color palette, undo, and PNG export.
//
// Pointer coordinates are given in display pixels and mapped into the
// backing bitmap, whose size is configured independently:
//
//	c := paint.NewCanvas(paint.WithSize(2000, 2000), paint.WithDisplaySize(800, 500))
//	c.StartStroke(nyx.Pt(10, 10))
//	c.ContinueStroke(nyx.Pt(20, 20)) // bitmap segment (25,40)-(50,80)
//	c.EndStroke()
//	c.Save()
//
// Every method is a no-op on a nil or closed Canvas.
package paint

import (
	"errors"
	"image"
	"math"
	"slices"
	"sync"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/nyxui/nyx"
)

// ErrClosed is returned by Export after Close.
var ErrClosed = errors.New("paint: canvas closed")

// Stroke is a finished freehand line in bitmap coordinates.
type Stroke struct {
	Tool   Tool
	Color  nyx.RGBA // the painted color; background for the eraser
	Points []nyx.Point
}

// Canvas is a drawing surface. It is safe for concurrent use.
type Canvas struct {
	mu sync.Mutex

	img        *image.RGBA
	displayW   int
	displayH   int
	title      string
	background nyx.RGBA
	palette    []nyx.RGBA

	tool    Tool
	color   nyx.RGBA
	strokes []Stroke
	active  *Stroke

	saves    int
	status   string
	statusAt time.Time

	exporter   Exporter
	downloader Downloader
	now        func() time.Time
	closed     bool
}

// NewCanvas creates a canvas filled with the background color. The brush
// is active with the first palette color.
func NewCanvas(opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.displayW == 0 {
		o.displayW, o.displayH = o.width, o.height
	}

	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, o.width, o.height)),
		displayW:   o.displayW,
		displayH:   o.displayH,
		title:      o.title,
		background: o.background,
		palette:    slices.Clone(o.palette),
		tool:       Brush,
		color:      o.palette[0],
		exporter:   o.exporter,
		downloader: o.downloader,
		now:        o.now,
	}
	c.fillBackground()
	return c
}

// Close detaches the canvas. Later calls are no-ops.
func (c *Canvas) Close() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.closed = true
	c.active = nil
	c.mu.Unlock()
}

// lock acquires the mutex unless c is nil or closed.
func (c *Canvas) lock() bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	return true
}

// Title returns the window title.
func (c *Canvas) Title() string {
	if c == nil {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.title
}

// Size returns the bitmap size.
func (c *Canvas) Size() (width, height int) {
	if c == nil {
		return 0, 0
	}
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// DisplaySize returns the on-screen size.
func (c *Canvas) DisplaySize() (width, height int) {
	if c == nil {
		return 0, 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayW, c.displayH
}

// SetDisplaySize changes the on-screen size, as after a window resize.
// Non-positive sizes are ignored.
func (c *Canvas) SetDisplaySize(width, height int) {
	if width <= 0 || height <= 0 || !c.lock() {
		return
	}
	defer c.mu.Unlock()
	c.displayW, c.displayH = width, height
}

// ToBitmap maps a display point into bitmap coordinates.
func (c *Canvas) ToBitmap(p nyx.Point) nyx.Point {
	if c == nil {
		return p
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.toBitmapLocked(p)
}

func (c *Canvas) toBitmapLocked(p nyx.Point) nyx.Point {
	b := c.img.Bounds()
	scaleX := float64(b.Dx()) / float64(c.displayW)
	scaleY := float64(b.Dy()) / float64(c.displayH)
	return nyx.Pt(p.X*scaleX, p.Y*scaleY)
}

// Tool returns the active tool.
func (c *Canvas) Tool() Tool {
	if c == nil {
		return Brush
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tool
}

// SetTool selects the active tool. A stroke in progress keeps its tool.
func (c *Canvas) SetTool(t Tool) {
	if !c.lock() {
		return
	}
	defer c.mu.Unlock()
	c.tool = t
}

// Color returns the brush color.
func (c *Canvas) Color() nyx.RGBA {
	if c == nil {
		return nyx.Black
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.color
}

// SetColor sets the brush color.
func (c *Canvas) SetColor(col nyx.RGBA) {
	if !c.lock() {
		return
	}
	defer c.mu.Unlock()
	c.color = col
}

// Palette returns the selectable colors.
func (c *Canvas) Palette() []nyx.RGBA {
	if c == nil {
		return nil
	}
	return slices.Clone(c.palette)
}

// StartStroke begins a stroke at display point p with the active tool.
// A non-finite p starts nothing, so the following moves are no-ops.
func (c *Canvas) StartStroke(p nyx.Point) {
	if !c.lock() {
		return
	}
	defer c.mu.Unlock()

	q := c.toBitmapLocked(p)
	if !q.IsFinite() {
		nyx.Logger().Debug("paint: dropping non-finite stroke start", "point", p)
		c.active = nil
		return
	}
	col := c.color
	if c.tool == Eraser {
		col = c.background
	}
	c.active = &Stroke{
		Tool:   c.tool,
		Color:  col,
		Points: []nyx.Point{q},
	}
}

// ContinueStroke draws one round-capped segment from the last point of the
// active stroke to display point p. Without an active stroke it does
// nothing.
func (c *Canvas) ContinueStroke(p nyx.Point) {
	if !c.lock() {
		return
	}
	defer c.mu.Unlock()
	if c.active == nil {
		return
	}

	q := c.toBitmapLocked(p)
	if !q.IsFinite() {
		nyx.Logger().Debug("paint: dropping non-finite point", "point", p)
		return
	}
	last := c.active.Points[len(c.active.Points)-1]
	c.drawSegment(last, q, c.active.Tool.Width(), c.active.Color)
	c.active.Points = append(c.active.Points, q)
}

// EndStroke finishes the active stroke. Strokes that never moved are
// discarded.
func (c *Canvas) EndStroke() {
	if !c.lock() {
		return
	}
	defer c.mu.Unlock()
	if c.active == nil {
		return
	}
	if len(c.active.Points) > 1 {
		c.strokes = append(c.strokes, *c.active)
	}
	c.active = nil
}

// Strokes returns the finished strokes, oldest first.
func (c *Canvas) Strokes() []Stroke {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Stroke, len(c.strokes))
	for i, s := range c.strokes {
		s.Points = slices.Clone(s.Points)
		out[i] = s
	}
	return out
}

// Clear fills the bitmap with the background color and forgets all
// strokes.
func (c *Canvas) Clear() {
	if !c.lock() {
		return
	}
	defer c.mu.Unlock()
	c.strokes = nil
	c.active = nil
	c.fillBackground()
}

// Undo removes the last finished stroke and redraws the rest. It reports
// whether there was a stroke to remove.
func (c *Canvas) Undo() bool {
	if !c.lock() {
		return false
	}
	defer c.mu.Unlock()
	if len(c.strokes) == 0 {
		return false
	}
	c.strokes = c.strokes[:len(c.strokes)-1]
	c.fillBackground()
	for _, s := range c.strokes {
		for i := 1; i < len(s.Points); i++ {
			c.drawSegment(s.Points[i-1], s.Points[i], s.Tool.Width(), s.Color)
		}
	}
	return true
}

// Image returns a copy of the bitmap.
func (c *Canvas) Image() *image.RGBA {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneRGBA(c.img)
}

func (c *Canvas) fillBackground() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.background.NRGBA()), image.Point{}, draw.Src)
}

// drawSegment rasterizes a capsule around a-b. Only the segment's bounding
// box is rasterized.
func (c *Canvas) drawSegment(a, b nyx.Point, width float64, col nyx.RGBA) {
	r := width/2 + 1
	box := image.Rect(
		int(math.Floor(math.Min(a.X, b.X)-r)),
		int(math.Floor(math.Min(a.Y, b.Y)-r)),
		int(math.Ceil(math.Max(a.X, b.X)+r)),
		int(math.Ceil(math.Max(a.Y, b.Y)+r)),
	).Intersect(c.img.Bounds())
	if box.Empty() {
		return
	}

	z := vector.NewRasterizer(box.Dx(), box.Dy())
	nyx.Capsule(a, b, width).AddTo(z, nyx.Translate(-float64(box.Min.X), -float64(box.Min.Y)))
	z.Draw(c.img, box, image.NewUniform(col.NRGBA()), image.Point{})
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
