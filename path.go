package nyx

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/vector"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Anchors returns the on-curve points of the first subpath in order:
// the MoveTo point followed by the end point of every segment. A final end
// point that returns to the start is dropped, so a closed blob with n
// segments yields n anchors.
func (p *Path) Anchors() []Point {
	var anchors []Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if len(anchors) > 0 {
				return trimClosingAnchor(anchors)
			}
			anchors = append(anchors, e.Point)
		case LineTo:
			anchors = append(anchors, e.Point)
		case QuadTo:
			anchors = append(anchors, e.Point)
		case CubicTo:
			anchors = append(anchors, e.Point)
		}
	}
	return trimClosingAnchor(anchors)
}

func trimClosingAnchor(anchors []Point) []Point {
	n := len(anchors)
	if n > 1 && anchors[n-1].Distance(anchors[0]) < 1e-9 {
		return anchors[:n-1]
	}
	return anchors
}

// SVG serializes the path in the SVG path mini-language using absolute
// commands and two decimal places, e.g. "M 10.00,20.00 C ... Z".
func (p *Path) SVG() string {
	var b strings.Builder
	b.Grow(len(p.elements) * 40)
	for i, elem := range p.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			b.WriteString("M ")
			writePoint(&b, e.Point)
		case LineTo:
			b.WriteString("L ")
			writePoint(&b, e.Point)
		case QuadTo:
			b.WriteString("Q ")
			writePoint(&b, e.Control)
			b.WriteByte(' ')
			writePoint(&b, e.Point)
		case CubicTo:
			b.WriteString("C ")
			writePoint(&b, e.Control1)
			b.WriteByte(' ')
			writePoint(&b, e.Control2)
			b.WriteByte(' ')
			writePoint(&b, e.Point)
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (p *Path) String() string {
	return p.SVG()
}

func writePoint(b *strings.Builder, pt Point) {
	b.WriteString(FormatCoord(pt.X))
	b.WriteByte(',')
	b.WriteString(FormatCoord(pt.Y))
}

// FormatCoord formats a path coordinate with two decimals. Non-finite
// values are written as 0 so the output is always a valid path.
func FormatCoord(v float64) string {
	if !isFinite(v) {
		v = 0
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// AddTo appends the path, transformed by m, to a vector rasterizer.
func (p *Path) AddTo(z *vector.Rasterizer, m Matrix) {
	open := false
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				z.ClosePath()
			}
			pt := m.TransformPoint(e.Point)
			z.MoveTo(float32(pt.X), float32(pt.Y))
			open = true
		case LineTo:
			pt := m.TransformPoint(e.Point)
			z.LineTo(float32(pt.X), float32(pt.Y))
		case QuadTo:
			c := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			z.QuadTo(float32(c.X), float32(c.Y), float32(pt.X), float32(pt.Y))
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(pt.X), float32(pt.Y))
		case Close:
			if open {
				z.ClosePath()
				open = false
			}
		}
	}
	if open {
		z.ClosePath()
	}
}

// Polygon builds a closed path through pts.
func Polygon(pts []Point) *Path {
	p := NewPath()
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	if len(pts) > 0 {
		p.Close()
	}
	return p
}

// Capsule builds a closed, convex, round-capped outline around the segment
// a-b with the given width. Arcs are flattened into segments short enough
// to look round at the given width.
func Capsule(a, b Point, width float64) *Path {
	r := width / 2
	dir := math.Atan2(b.Y-a.Y, b.X-a.X)
	if a == b {
		dir = 0
	}

	steps := int(math.Ceil(r)) + 4
	if steps > 32 {
		steps = 32
	}

	pts := make([]Point, 0, 2*(steps+1))
	// Cap around b sweeps from the left normal to the right normal,
	// cap around a continues back, keeping a single winding direction.
	for i := 0; i <= steps; i++ {
		ang := dir - math.Pi/2 + math.Pi*float64(i)/float64(steps)
		pts = append(pts, b.Polar(ang, r))
	}
	for i := 0; i <= steps; i++ {
		ang := dir + math.Pi/2 + math.Pi*float64(i)/float64(steps)
		pts = append(pts, a.Polar(ang, r))
	}
	return Polygon(pts)
}
