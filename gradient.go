package nyx

import (
	"math"
	"sort"

	"github.com/nyxui/nyx/internal/color"
)

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// EvenStops spreads colors evenly over [0, 1].
func EvenStops(colors ...RGBA) []ColorStop {
	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		off := 0.0
		if len(colors) > 1 {
			off = float64(i) / float64(len(colors)-1)
		}
		stops[i] = ColorStop{Offset: off, Color: c}
	}
	return stops
}

// sortStops returns a copy of stops ordered by offset.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// interpolateColorLinear blends two colors in linear sRGB space.
// Alpha is blended linearly as it is never gamma-encoded.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	return RGBA{
		R: color.MixLinear(c1.R, c2.R, t),
		G: color.MixLinear(c1.G, c2.G, t),
		B: color.MixLinear(c1.B, c2.B, t),
		A: c1.A + (c2.A-c1.A)*t,
	}
}

// colorAtOffset returns the interpolated color at a given offset.
// stops must be sorted by offset.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	t = applyExtendMode(t, mode)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	stop1 := stops[idx-1]
	stop2 := stops[idx]
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return interpolateColorLinear(stop1.Color, stop2.Color, localT)
}
