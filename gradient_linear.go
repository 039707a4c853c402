package nyx

import (
	"image"
	"image/color"
)

// LinearGradient represents a linear color transition between two points.
// It implements image.Image over an unbounded plane, so it can be used as
// the source of a rasterizer draw call.
//
// Example:
//
//	g := nyx.NewLinearGradient(0, 0, 100, 100, nyx.EvenStops(from, to)...)
//	rasterizer.Draw(dst, dst.Bounds(), g, image.Point{})
type LinearGradient struct {
	Start  Point       // Start point of the gradient
	End    Point       // End point of the gradient
	Stops  []ColorStop // Color stops defining the gradient
	Extend ExtendMode  // How gradient extends beyond bounds

	// Opacity scales the alpha of every stop. Zero is treated as 1.
	Opacity float64
}

// NewLinearGradient creates a new linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64, stops ...ColorStop) *LinearGradient {
	return &LinearGradient{
		Start: Point{X: x0, Y: y0},
		End:   Point{X: x1, Y: y1},
		Stops: sortStops(stops),
	}
}

// ColorAt returns the color at the given point.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy

	var c RGBA
	if lengthSq == 0 {
		c = colorAtOffset(g.Stops, 0, g.Extend)
	} else {
		// t = dot(P - Start, End - Start) / |End - Start|^2
		t := ((x-g.Start.X)*dx + (y-g.Start.Y)*dy) / lengthSq
		c = colorAtOffset(g.Stops, t, g.Extend)
	}
	if g.Opacity > 0 {
		c.A *= g.Opacity
	}
	return c
}

// At implements image.Image, sampling at the pixel centre.
func (g *LinearGradient) At(x, y int) color.Color {
	return g.ColorAt(float64(x)+0.5, float64(y)+0.5).NRGBA()
}

// Bounds implements image.Image. The gradient covers the whole plane.
func (g *LinearGradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

// ColorModel implements image.Image.
func (g *LinearGradient) ColorModel() color.Model {
	return color.NRGBAModel
}
