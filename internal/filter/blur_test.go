package filter

import (
	"image"
	"image/color"
	"testing"
)

func squareMask(size, inset int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := inset; y < size-inset; y++ {
		for x := inset; x < size-inset; x++ {
			m.SetAlpha(x, y, color.Alpha{A: 255})
		}
	}
	return m
}

func TestBlurAlphaZeroRadiusCopies(t *testing.T) {
	src := squareMask(16, 4)
	dst := BlurAlpha(src, 0)
	if &dst.Pix[0] == &src.Pix[0] {
		t.Fatal("BlurAlpha should return a new mask")
	}
	for i := range src.Pix {
		if src.Pix[i] != dst.Pix[i] {
			t.Fatalf("pixel %d = %d, want %d", i, dst.Pix[i], src.Pix[i])
		}
	}
}

func TestBlurAlphaSpreadsCoverage(t *testing.T) {
	src := squareMask(32, 10)
	dst := BlurAlpha(src, 2)

	if got := dst.AlphaAt(16, 16).A; got < 250 {
		t.Errorf("center = %d, want nearly opaque", got)
	}
	if got := dst.AlphaAt(8, 16).A; got == 0 {
		t.Error("blur should spread into the margin")
	}
	if got := dst.AlphaAt(10, 16).A; got >= 255 {
		t.Errorf("edge = %d, want softened", got)
	}
	if got := dst.AlphaAt(0, 0).A; got != 0 {
		t.Errorf("far corner = %d, want 0", got)
	}
}

func TestBlurAlphaUniformInteriorPreserved(t *testing.T) {
	src := squareMask(40, 0)
	dst := BlurAlpha(src, 1)
	if got := dst.AlphaAt(20, 20).A; got != 255 {
		t.Errorf("interior = %d, want 255", got)
	}
	// Outside samples are transparent, so the border darkens.
	if got := dst.AlphaAt(0, 20).A; got >= 255 {
		t.Errorf("border = %d, want < 255", got)
	}
}

func TestBlurAlphaEmpty(t *testing.T) {
	dst := BlurAlpha(image.NewAlpha(image.Rectangle{}), 3)
	if !dst.Bounds().Empty() {
		t.Error("empty mask should stay empty")
	}
}

func TestClampUint8(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{-3, 0},
		{0, 0},
		{127.4, 127},
		{127.5, 128},
		{300, 255},
	}
	for _, tt := range tests {
		if got := clampUint8(tt.in); got != tt.want {
			t.Errorf("clampUint8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
