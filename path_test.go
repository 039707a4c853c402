package nyx

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func pointsNear(a, b []Point, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i].X-b[i].X) > eps || math.Abs(a[i].Y-b[i].Y) > eps {
			return false
		}
	}
	return true
}

func TestPathSVG(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 20)
	p.CubicTo(11, 21, 12.346, 22, 30, 40)
	p.LineTo(-0.001, 5)
	p.Close()

	want := "M 10.00,20.00 C 11.00,21.00 12.35,22.00 30.00,40.00 L 0.00,5.00 Z"
	if got := p.SVG(); got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}
}

func TestFormatCoordNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := FormatCoord(v); got != "0.00" {
			t.Errorf("FormatCoord(%v) = %q, want 0.00", v, got)
		}
	}
}

func TestParsePathRoundTrip(t *testing.T) {
	src := "M 50.00,10.00 C 60.00,10.00 90.00,40.00 90.00,50.00 C 90.00,60.00 60.00,90.00 50.00,90.00 " +
		"C 40.00,90.00 10.00,60.00 10.00,50.00 C 10.00,40.00 40.00,10.00 50.00,10.00 Z"
	p, err := ParsePath(src)
	if err != nil {
		t.Fatalf("ParsePath() error = %v", err)
	}
	if got := p.SVG(); got != src {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", got, src)
	}

	want := []Point{{50, 10}, {90, 50}, {50, 90}, {10, 50}}
	if got := p.Anchors(); !pointsNear(got, want, 1e-9) {
		t.Errorf("Anchors() = %v, want %v", got, want)
	}
}

func TestParsePathSyntax(t *testing.T) {
	tests := []struct {
		name    string
		d       string
		anchors []Point
	}{
		{"compact separators", "M10,10L20-5", []Point{{10, 10}, {20, -5}}},
		{"implicit lineto", "M 0 0 10 0 10 10", []Point{{0, 0}, {10, 0}, {10, 10}}},
		{"relative", "m 5 5 l 10 0 v 10 h -10 z", []Point{{5, 5}, {15, 5}, {15, 15}, {5, 15}}},
		{"exponent", "M 1e1,2E-1 L 3,4", []Point{{10, 0.2}, {3, 4}}},
		{"adjacent decimals", "M .5.5 L 1,1", []Point{{0.5, 0.5}, {1, 1}}},
		{"quadratic", "M 0,0 Q 5,5 10,0", []Point{{0, 0}, {10, 0}}},
		{"relative cubic", "M 10,10 c 1,1 2,2 5,0", []Point{{10, 10}, {15, 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePath(tt.d)
			if err != nil {
				t.Fatalf("ParsePath(%q) error = %v", tt.d, err)
			}
			if got := p.Anchors(); !pointsNear(got, tt.anchors, 1e-9) {
				t.Errorf("Anchors() = %v, want %v", got, tt.anchors)
			}
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, d := range []string{
		"",
		"   ",
		"10 10",
		"L 10,10",
		"M 10",
		"M 10,10 C 1,2 3,4",
		"M NaN,1",
		"M 1,1 X 2,2",
	} {
		if _, err := ParsePath(d); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("ParsePath(%q) error = %v, want ErrInvalidPath", d, err)
		}
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(60, 50)
	p.LineTo(50, 60)
	p.Close()

	got := p.Transform(RotateAbout(90, 50, 50)).Anchors()
	want := []Point{{50, 60}, {40, 50}}
	if !pointsNear(got, want, 1e-9) {
		t.Errorf("rotated anchors = %v, want %v", got, want)
	}
}

func TestCapsuleIsClosedAndWide(t *testing.T) {
	c := Capsule(Pt(0, 0), Pt(10, 0), 4)
	svg := c.SVG()
	if !strings.HasPrefix(svg, "M ") || !strings.HasSuffix(svg, "Z") {
		t.Fatalf("capsule not a closed path: %q", svg)
	}
	minX, maxX, minY, maxY := math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	for _, a := range c.Anchors() {
		minX, maxX = math.Min(minX, a.X), math.Max(maxX, a.X)
		minY, maxY = math.Min(minY, a.Y), math.Max(maxY, a.Y)
	}
	if math.Abs(minX+2) > 1e-9 || math.Abs(maxX-12) > 1e-9 {
		t.Errorf("x extent = [%v, %v], want [-2, 12]", minX, maxX)
	}
	if math.Abs(minY+2) > 1e-9 || math.Abs(maxY-2) > 1e-9 {
		t.Errorf("y extent = [%v, %v], want [-2, 2]", minY, maxY)
	}
}

func TestPointOr(t *testing.T) {
	fallback := Pt(1, 2)
	tests := []struct {
		in, want Point
	}{
		{Pt(3, 4), Pt(3, 4)},
		{Pt(math.NaN(), 4), Pt(1, 4)},
		{Pt(3, math.Inf(1)), Pt(3, 2)},
		{Pt(math.Inf(-1), math.NaN()), Pt(1, 2)},
	}
	for _, tt := range tests {
		if got := tt.in.Or(fallback); got != tt.want {
			t.Errorf("%v.Or(%v) = %v, want %v", tt.in, fallback, got, tt.want)
		}
	}
}
