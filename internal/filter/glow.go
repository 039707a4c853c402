package filter

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Glow paints a soft, tinted copy of mask onto dst.
//
// The mask is blurred with the given radius, shifted by offset, and used as
// coverage for a uniform tint. Draw the glow before the layer it belongs
// to so it reads as a halo or shadow beneath it.
type Glow struct {
	// Radius is the blur sigma in pixels. Zero gives a hard-edged copy.
	Radius float64

	// Offset shifts the glow relative to the mask.
	Offset image.Point

	// Color tints the glow. Its alpha scales the final opacity.
	Color color.Color
}

// Apply composites the glow of mask onto dst with the Over operator.
func (g Glow) Apply(dst draw.Image, mask *image.Alpha) {
	if dst == nil || mask == nil || g.Color == nil {
		return
	}
	blurred := BlurAlpha(mask, g.Radius)
	r := blurred.Bounds().Add(g.Offset).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.DrawMask(dst, r, image.NewUniform(g.Color), image.Point{}, blurred, r.Min.Sub(g.Offset), draw.Over)
}
