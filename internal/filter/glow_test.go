package filter

import (
	"image"
	"image/color"
	"testing"
)

func TestGlowTintsAndOffsets(t *testing.T) {
	mask := squareMask(20, 8) // covers [8, 12)
	dst := image.NewRGBA(mask.Bounds())

	Glow{Offset: image.Pt(3, 3), Color: color.NRGBA{R: 255, A: 255}}.Apply(dst, mask)

	if got := dst.RGBAAt(12, 12); got.R != 255 || got.A != 255 {
		t.Errorf("shifted pixel = %+v, want opaque red", got)
	}
	if got := dst.RGBAAt(8, 8); got.A != 0 {
		t.Errorf("original position = %+v, want untouched", got)
	}
}

func TestGlowBlurredHalo(t *testing.T) {
	mask := squareMask(40, 15)
	dst := image.NewRGBA(mask.Bounds())

	Glow{Radius: 3, Color: color.NRGBA{B: 255, A: 128}}.Apply(dst, mask)

	center := dst.RGBAAt(20, 20)
	if center.A == 0 || center.A > 129 {
		t.Errorf("center alpha = %d, want about half", center.A)
	}
	if dst.RGBAAt(12, 20).A == 0 {
		t.Error("halo should extend past the mask edge")
	}
}

func TestGlowNilSafe(t *testing.T) {
	Glow{Radius: 1, Color: color.Black}.Apply(nil, squareMask(4, 0))
	Glow{Radius: 1}.Apply(image.NewRGBA(image.Rect(0, 0, 4, 4)), squareMask(4, 0))
	Glow{Radius: 1, Color: color.Black}.Apply(image.NewRGBA(image.Rect(0, 0, 4, 4)), nil)
}
