// Package theme defines the gradient color schemes of Nyx components.
//
// A Theme is either a Named preset or a Custom set of colors. The two are
// distinct types, so a custom palette can never be half-specified next to a
// preset name.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nyxui/nyx"
)

// ErrUnknownTheme is returned by Parse for names that are not presets.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// Theme provides the gradient fill of a component.
type Theme interface {
	// Name identifies the theme: the preset id, or "custom".
	Name() string
	// Stops returns two or three evenly spaced gradient stops.
	Stops() []nyx.ColorStop
	// Accent is the color used for glows and highlights.
	Accent() nyx.RGBA

	isTheme()
}

// Preset identifies a built-in theme.
type Preset string

// Built-in presets.
const (
	Primary   Preset = "primary"
	Secondary Preset = "secondary"
	Success   Preset = "success"
	Warning   Preset = "warning"
	Danger    Preset = "danger"
	Info      Preset = "info"
	Neon      Preset = "neon"
	Sunset    Preset = "sunset"
	Ocean     Preset = "ocean"
	Aurora    Preset = "aurora"
)

var presets = map[Preset][]string{
	Primary:   {"#6366f1", "#8b5cf6", "#a855f7"},
	Secondary: {"#64748b", "#94a3b8"},
	Success:   {"#10b981", "#34d399", "#6ee7b7"},
	Warning:   {"#f59e0b", "#fbbf24"},
	Danger:    {"#ef4444", "#f43f5e", "#ec4899"},
	Info:      {"#0ea5e9", "#38bdf8", "#22d3ee"},
	Neon:      {"#ff00ff", "#00ffff", "#39ff14"},
	Sunset:    {"#f97316", "#ec4899", "#8b5cf6"},
	Ocean:     {"#0ea5e9", "#06b6d4", "#14b8a6"},
	Aurora:    {"#22c55e", "#06b6d4", "#a855f7"},
}

// Presets returns the preset ids in sorted order.
func Presets() []Preset {
	ids := make([]Preset, 0, len(presets))
	for id := range presets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Named is a built-in preset.
type Named struct {
	Preset Preset
}

func (Named) isTheme() {}

// Name implements Theme.
func (n Named) Name() string { return string(n.Preset) }

// Stops implements Theme. Unknown presets fall back to Primary.
func (n Named) Stops() []nyx.ColorStop {
	hexes, ok := presets[n.Preset]
	if !ok {
		hexes = presets[Primary]
	}
	colors := make([]nyx.RGBA, len(hexes))
	for i, h := range hexes {
		colors[i] = nyx.Hex(h)
	}
	return nyx.EvenStops(colors...)
}

// Accent implements Theme.
func (n Named) Accent() nyx.RGBA {
	return n.Stops()[0].Color
}

// Custom is a caller-supplied gradient. Via is optional.
type Custom struct {
	From nyx.RGBA
	Via  *nyx.RGBA
	To   nyx.RGBA
}

func (Custom) isTheme() {}

// Name implements Theme.
func (Custom) Name() string { return "custom" }

// Stops implements Theme.
func (c Custom) Stops() []nyx.ColorStop {
	if c.Via == nil {
		return nyx.EvenStops(c.From, c.To)
	}
	return nyx.EvenStops(c.From, *c.Via, c.To)
}

// Accent implements Theme.
func (c Custom) Accent() nyx.RGBA {
	return c.From
}

// Colors are the string form of a custom theme, as found in configuration.
type Colors struct {
	From string
	Via  string
	To   string
}

// Parse resolves a theme name. "custom" builds a Custom theme from colors;
// any other name must be a preset. An empty name selects Primary.
func Parse(name string, colors Colors) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return Named{Preset: Primary}, nil
	case "custom":
		from, err := nyx.ParseHex(colors.From)
		if err != nil {
			return nil, fmt.Errorf("theme: custom from: %w", err)
		}
		to, err := nyx.ParseHex(colors.To)
		if err != nil {
			return nil, fmt.Errorf("theme: custom to: %w", err)
		}
		c := Custom{From: from, To: to}
		if colors.Via != "" {
			via, err := nyx.ParseHex(colors.Via)
			if err != nil {
				return nil, fmt.Errorf("theme: custom via: %w", err)
			}
			c.Via = &via
		}
		return c, nil
	}

	if _, ok := presets[Preset(name)]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return Named{Preset: Preset(name)}, nil
}
