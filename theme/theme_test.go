package theme

import (
	"errors"
	"testing"

	"github.com/nyxui/nyx"
)

func TestNamedStops(t *testing.T) {
	for _, p := range Presets() {
		stops := Named{Preset: p}.Stops()
		if len(stops) < 2 || len(stops) > 3 {
			t.Errorf("%s: %d stops, want 2 or 3", p, len(stops))
		}
		if stops[0].Offset != 0 || stops[len(stops)-1].Offset != 1 {
			t.Errorf("%s: stops not spanning [0, 1]", p)
		}
	}
	if got := len(Presets()); got != 10 {
		t.Errorf("Presets() = %d entries, want 10", got)
	}
}

func TestUnknownPresetFallsBack(t *testing.T) {
	got := Named{Preset: "nope"}.Stops()
	want := Named{Preset: Primary}.Stops()
	if got[0].Color != want[0].Color {
		t.Error("unknown preset should use primary colors")
	}
}

func TestCustomStops(t *testing.T) {
	from, to := nyx.Hex("#ff0080"), nyx.Hex("#2afadf")
	c := Custom{From: from, To: to}
	if got := len(c.Stops()); got != 2 {
		t.Errorf("custom without via: %d stops, want 2", got)
	}
	via := nyx.Hex("#7928ca")
	c.Via = &via
	stops := c.Stops()
	if len(stops) != 3 || stops[1].Color != via || stops[1].Offset != 0.5 {
		t.Errorf("custom with via stops = %+v", stops)
	}
	if c.Accent() != from || c.Name() != "custom" {
		t.Error("custom accent/name mismatch")
	}
}

func TestParse(t *testing.T) {
	th, err := Parse(" Sunset ", Colors{})
	if err != nil || th.Name() != "sunset" {
		t.Fatalf("Parse(sunset) = %v, %v", th, err)
	}

	th, err = Parse("", Colors{})
	if err != nil || th.Name() != "primary" {
		t.Fatalf("Parse(\"\") = %v, %v", th, err)
	}

	th, err = Parse("custom", Colors{From: "#f00", Via: "#0f0", To: "#00f"})
	if err != nil {
		t.Fatalf("Parse(custom) error = %v", err)
	}
	if c, ok := th.(Custom); !ok || c.Via == nil {
		t.Fatalf("Parse(custom) = %#v, want Custom with via", th)
	}

	if _, err := Parse("plaid", Colors{}); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("Parse(plaid) error = %v, want ErrUnknownTheme", err)
	}
	if _, err := Parse("custom", Colors{From: "#f00", To: "blue"}); !errors.Is(err, nyx.ErrInvalidColor) {
		t.Errorf("Parse(custom, bad to) error = %v, want ErrInvalidColor", err)
	}
}

func TestContextSubscribe(t *testing.T) {
	ctx := NewContext(Light)
	var seen []Mode
	unsubscribe := ctx.Subscribe(func(m Mode) { seen = append(seen, m) })

	ctx.SetMode(Dark)
	ctx.SetMode(Dark) // no change, no notification
	ctx.SetMode(Light)
	unsubscribe()
	ctx.SetMode(Dark)

	if len(seen) != 2 || seen[0] != Dark || seen[1] != Light {
		t.Errorf("notifications = %v, want [dark light]", seen)
	}
	if ctx.Mode() != Dark {
		t.Errorf("Mode() = %v, want dark", ctx.Mode())
	}

	var nilCtx *Context
	if nilCtx.Mode() != Light {
		t.Error("nil context should report light")
	}
}
