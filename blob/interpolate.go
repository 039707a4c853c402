package blob

import (
	"github.com/nyxui/nyx"
)

// EaseInOutCubic eases t in [0, 1]: slow start, fast middle, slow end.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Interpolate returns the blob between paths a and b at fraction t.
// Anchors are blended with eased t and joined with fresh control points
// at InterpolationTension.
//
// When either path cannot be parsed, or the anchor counts differ (for
// example after a complexity change mid-morph), b is returned unchanged.
func Interpolate(a, b string, t float64) string {
	pa, err := nyx.ParsePath(a)
	if err != nil {
		nyx.Logger().Debug("blob: interpolate source unparsable", "error", err)
		return b
	}
	pb, err := nyx.ParsePath(b)
	if err != nil {
		nyx.Logger().Debug("blob: interpolate target unparsable", "error", err)
		return b
	}

	pts, ok := InterpolatePoints(pa.Anchors(), pb.Anchors(), t)
	if !ok {
		return b
	}
	return smoothPath(pts, InterpolationTension).SVG()
}

// InterpolatePoints blends two anchor lists at eased fraction t.
// ok is false when the lists differ in length or are empty.
func InterpolatePoints(a, b []nyx.Point, t float64) (pts []nyx.Point, ok bool) {
	if len(a) != len(b) || len(a) == 0 {
		nyx.Logger().Debug("blob: anchor count mismatch", "from", len(a), "to", len(b))
		return nil, false
	}

	e := EaseInOutCubic(clamp01(t))
	pts = make([]nyx.Point, len(a))
	for i := range a {
		pts[i] = a[i].Lerp(b[i], e).Or(b[i])
	}
	return pts, true
}

func clamp01(t float64) float64 {
	switch {
	case t != t: // NaN
		return 0
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
