package dock

import (
	"math"
	"testing"
	"time"

	"github.com/nyxui/nyx/anim"
)

func TestTargetScale(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		want float64
	}{
		{"under pointer", 0, 1.8},
		{"halfway", 75, 1.4},
		{"edge", 150, 1},
		{"beyond", 400, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TargetScale(tt.dist, Distance, MaxScale); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TargetScale(%v) = %v, want %v", tt.dist, got, tt.want)
			}
		})
	}
}

func TestTargetsFollowPointer(t *testing.T) {
	d := New(5)
	for _, s := range d.Targets() {
		if s != 1 {
			t.Fatalf("targets without pointer = %v, want all 1", d.Targets())
		}
	}

	d.SetPointer(2*(BaseSize+Spacing) + BaseSize/2) // center of icon 2
	targets := d.Targets()
	if math.Abs(targets[2]-MaxScale) > 1e-9 {
		t.Errorf("target under pointer = %v, want %v", targets[2], MaxScale)
	}
	if targets[1] != targets[3] || targets[1] >= targets[2] || targets[1] <= 1 {
		t.Errorf("neighbours = %v, want symmetric and between 1 and max", targets)
	}
	if targets[0] >= targets[1] {
		t.Errorf("far icon %v should be smaller than near icon %v", targets[0], targets[1])
	}

	d.SetPointer(math.NaN())
	if got := d.Targets()[2]; math.Abs(got-MaxScale) > 1e-9 {
		t.Error("non-finite pointer should be ignored")
	}
}

func TestSpringConverges(t *testing.T) {
	d := New(4)
	d.SetPointer(BaseSize / 2)
	for i := 0; i < 240; i++ {
		d.Update()
	}
	scales := d.Scales()
	if math.Abs(scales[0]-MaxScale) > 1e-3 {
		t.Errorf("scale under pointer after 4s = %v, want ~%v", scales[0], MaxScale)
	}

	d.Leave()
	for i := 0; i < 240; i++ {
		d.Update()
	}
	for i, s := range d.Scales() {
		if math.Abs(s-1) > 1e-3 {
			t.Errorf("icon %d scale after Leave = %v, want ~1", i, s)
		}
	}
}

func TestSpringDoesNotOvershoot(t *testing.T) {
	d := New(1)
	d.SetPointer(BaseSize / 2)
	for i := 0; i < 300; i++ {
		d.Update()
		if s := d.Scales()[0]; s > MaxScale+1e-6 {
			t.Fatalf("critically damped spring overshot: %v at frame %d", s, i)
		}
	}
}

func TestLayoutKeepsSpacing(t *testing.T) {
	d := New(3)
	d.SetPointer(BaseSize + Spacing + BaseSize/2)
	for i := 0; i < 120; i++ {
		d.Update()
	}
	slots := d.Layout()
	for i := 1; i < len(slots); i++ {
		gap := slots[i].X - (slots[i-1].X + slots[i-1].Size)
		if math.Abs(gap-Spacing) > 1e-9 {
			t.Errorf("gap %d = %v, want %v", i, gap, Spacing)
		}
	}
	if slots[1].Size <= BaseSize {
		t.Errorf("hovered icon size = %v, want > %v", slots[1].Size, BaseSize)
	}
	if w := d.Width(); w <= 3*BaseSize+2*Spacing {
		t.Errorf("Width() = %v, want larger than resting width", w)
	}
}

func TestAttachSteps(t *testing.T) {
	d := New(2)
	ticker := anim.NewManualTicker()
	cancel := d.Attach(ticker)

	d.SetPointer(BaseSize / 2)
	ticker.Advance(time.Second / FPS / 2) // half a frame: no step
	if d.Scales()[0] != 1 {
		t.Fatal("spring stepped before a full frame elapsed")
	}
	ticker.Advance(time.Second / FPS / 2)
	if d.Scales()[0] <= 1 {
		t.Fatal("spring did not step after a full frame")
	}

	cancel()
	before := d.Scales()[0]
	ticker.Advance(time.Second)
	if d.Scales()[0] != before {
		t.Error("dock advanced after cancel")
	}
}

func TestOptions(t *testing.T) {
	d := New(2, WithBaseSize(32), WithSpacing(4), WithMaxScale(2), WithDistance(100), WithSpring(8, 1))
	d.SetPointer(16)
	if got := d.Targets()[0]; math.Abs(got-2) > 1e-9 {
		t.Errorf("target = %v, want 2", got)
	}
	if got := d.Layout()[1].X; got != 36 {
		t.Errorf("second slot X = %v, want 36", got)
	}
	if New(-1).Len() != 0 {
		t.Error("negative count should give an empty dock")
	}
}
