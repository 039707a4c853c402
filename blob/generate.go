package blob

import (
	"math"
	"math/rand/v2"

	"github.com/nyxui/nyx"
)

// Center is the middle of the 0-100 viewBox.
var Center = nyx.Pt(50, 50)

// Rand produces uniformly distributed floats in [0, 1).
type Rand func() float64

// NewRand returns a seeded, independent random source.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)).Float64
}

func rngSeed() uint64 {
	return rand.Uint64()
}

// draw returns the next value of r clamped into [0, 1). A nil source uses
// the process-wide generator; a non-finite draw is replaced by 0.5.
func (r Rand) draw() float64 {
	if r == nil {
		return rand.Float64()
	}
	v := r()
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0.5
	case v < 0:
		return 0
	case v >= 1:
		return math.Nextafter(1, 0)
	}
	return v
}

// Shape is one generated blob keyframe.
type Shape struct {
	Points  []nyx.Point // anchors, cyclic
	Tension float64
	Path    string // SVG path data in the 0-100 viewBox
}

// Outline returns the smooth closed path through the shape's anchors.
func (s Shape) Outline() *nyx.Path {
	return smoothPath(s.Points, s.Tension)
}

// Generate builds a random blob for a complexity level (1-5) and
// interaction state. Anchors sit on a circle around Center, each radius
// jittered by the complexity's variance plus a small harmonic wobble, and
// are joined by Catmull-Rom cubic segments.
//
// Complexity outside 1-5 is clamped.
func Generate(complexity int, hovered, clicked bool, rnd Rand) Shape {
	if c := ClampLevel(complexity); c != complexity && complexity != 0 {
		nyx.Logger().Debug("blob: complexity clamped", "requested", complexity, "used", c)
	}
	params := ParamsFor(complexity)
	base := BaseRadius(hovered, clicked)

	n := params.Points
	step := 2 * math.Pi / float64(n)
	points := make([]nyx.Point, n)
	for i := range points {
		angle := float64(i) * step
		r := math.Max(
			base*(1-params.Variance+rnd.draw()*2*params.Variance+wave(i)),
			base*minRadiusFrac,
		)
		points[i] = Center.Polar(angle, r).Or(Center.Polar(angle, base))
	}

	return Shape{
		Points:  points,
		Tension: params.Tension,
		Path:    smoothPath(points, params.Tension).SVG(),
	}
}

// wave is the deterministic wobble added to the i-th radius.
func wave(i int) float64 {
	x := float64(i)
	return 0.05*math.Sin(1.3*x) + 0.03*math.Sin(2.9*x+0.7)
}

// smoothPath joins pts into a closed curve of cubic segments. For the
// segment p1->p2 with neighbours p0 and p3 the control points are
//
//	cp1 = p1 + (p2 - p0) * tension/3
//	cp2 = p2 - (p3 - p1) * tension/3
//
// so tension 0.5 is a uniform Catmull-Rom spline. Non-finite control
// points collapse onto their own anchor.
func smoothPath(pts []nyx.Point, tension float64) *nyx.Path {
	p := nyx.NewPath()
	n := len(pts)
	if n == 0 {
		return p
	}

	k := tension / 3
	p.MoveTo(pts[0].X, pts[0].Y)
	for i := 0; i < n; i++ {
		p0 := pts[(i-1+n)%n]
		p1 := pts[i]
		p2 := pts[(i+1)%n]
		p3 := pts[(i+2)%n]

		cp1 := p1.Add(p2.Sub(p0).Mul(k))
		cp2 := p2.Sub(p3.Sub(p1).Mul(k))
		if !cp1.IsFinite() || !cp2.IsFinite() {
			nyx.Logger().Debug("blob: non-finite control point", "segment", i)
		}
		cp1 = cp1.Or(p1)
		cp2 = cp2.Or(p2)

		p.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p2.X, p2.Y)
	}
	p.Close()
	return p
}
