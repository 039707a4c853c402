package nyx

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func colorsEqual(c1, c2 RGBA, epsilon float64) bool {
	return math.Abs(c1.R-c2.R) < epsilon &&
		math.Abs(c1.G-c2.G) < epsilon &&
		math.Abs(c1.B-c2.B) < epsilon &&
		math.Abs(c1.A-c2.A) < epsilon
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#fff", RGB(1, 1, 1)},
		{"000", RGB(0, 0, 0)},
		{"#f008", RGBA{R: 1, A: 0x88 / 255.0}},
		{"#ff8000", RGB(1, 128.0/255, 0)},
		{"#FF800080", RGBA{R: 1, G: 128.0 / 255, A: 128.0 / 255}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error = %v", tt.in, err)
			continue
		}
		if !colorsEqual(got, tt.want, 1e-9) {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "#123456789"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
	if got := Hex("nope"); got != Black {
		t.Errorf("Hex(invalid) = %+v, want Black", got)
	}
}

func TestHexString(t *testing.T) {
	if got := Hex("#7928ca").HexString(); got != "#7928ca" {
		t.Errorf("HexString() = %q, want #7928ca", got)
	}
}

func TestColorConversions(t *testing.T) {
	c := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}
	n := c.NRGBA()
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 128}
	if n != want {
		t.Errorf("NRGBA() = %+v, want %+v", n, want)
	}
	back := FromColor(n)
	if !colorsEqual(back, c, 0.01) {
		t.Errorf("FromColor(NRGBA()) = %+v, want %+v", back, c)
	}
}

func TestColorLerp(t *testing.T) {
	got := Black.Lerp(White, 0.25)
	if !colorsEqual(got, RGB(0.25, 0.25, 0.25), 1e-9) {
		t.Errorf("Lerp = %+v", got)
	}
}
