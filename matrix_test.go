package nyx

import (
	"math"
	"testing"
)

func TestMatrixBasics(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"scale then translate", Translate(5, 5).Multiply(Scale(2, 2)), Pt(1, 1), Pt(7, 7)},
		{"rotate about centre", RotateAbout(180, 50, 50), Pt(60, 50), Pt(40, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if !RotateAbout(0, 50, 50).IsIdentity() {
		t.Error("zero rotation should be identity")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("translation reported as identity")
	}
}
