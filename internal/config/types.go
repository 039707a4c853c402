// Package config loads YAML files describing blob presets and paint
// scripts for the nyx command.
package config

import (
	"github.com/nyxui/nyx"
	"github.com/nyxui/nyx/blob"
	"github.com/nyxui/nyx/paint"
	"github.com/nyxui/nyx/render"
	"github.com/nyxui/nyx/theme"
)

// File is the root of a configuration document.
type File struct {
	Blob  Blob  `yaml:"blob"`
	Paint Paint `yaml:"paint"`
}

// Blob configures an animated blob and how it is rendered.
type Blob struct {
	Theme         string `yaml:"theme" validate:"omitempty,theme_name"`
	Custom        Custom `yaml:"custom"`
	Size          string `yaml:"size" validate:"omitempty,size_name"`
	Complexity    int    `yaml:"complexity" validate:"omitempty,min=1,max=5"`
	Speed         int    `yaml:"speed" validate:"omitempty,min=1,max=5"`
	HoverEffect   *bool  `yaml:"hover_effect"`
	ClickEffect   *bool  `yaml:"click_effect"`
	Pulse         bool   `yaml:"pulse"`
	Glow          *bool  `yaml:"glow"`
	GlowIntensity int    `yaml:"glow_intensity" validate:"omitempty,min=1,max=5"`
	Smooth        *bool  `yaml:"smooth"`
	Effect3D      bool   `yaml:"effect_3d"`
	Mode          string `yaml:"mode" validate:"omitempty,oneof=light dark"`
	Seed          uint64 `yaml:"seed"`
}

// Custom holds the colors of a custom theme.
type Custom struct {
	From string `yaml:"from" validate:"hexcolor_opt"`
	Via  string `yaml:"via" validate:"hexcolor_opt"`
	To   string `yaml:"to" validate:"hexcolor_opt"`
}

// Paint configures a canvas and the strokes replayed onto it.
type Paint struct {
	Title         string   `yaml:"title"`
	Width         int      `yaml:"width" validate:"omitempty,min=1,max=8192"`
	Height        int      `yaml:"height" validate:"omitempty,min=1,max=8192"`
	DisplayWidth  int      `yaml:"display_width" validate:"omitempty,min=1,max=8192"`
	DisplayHeight int      `yaml:"display_height" validate:"omitempty,min=1,max=8192"`
	Background    string   `yaml:"background" validate:"hexcolor_opt"`
	Strokes       []Stroke `yaml:"strokes" validate:"dive"`
}

// Stroke is one scripted pointer drag in display coordinates.
type Stroke struct {
	Tool   string       `yaml:"tool" validate:"omitempty,oneof=brush eraser"`
	Color  string       `yaml:"color" validate:"hexcolor_opt"`
	Points [][2]float64 `yaml:"points" validate:"min=1"`
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// AnimatorConfig returns the animation settings. Effects and smooth
// morphing default to on.
func (b Blob) AnimatorConfig() blob.Config {
	return blob.Config{
		Complexity:  b.Complexity,
		Speed:       b.Speed,
		HoverEffect: boolOr(b.HoverEffect, true),
		ClickEffect: boolOr(b.ClickEffect, true),
		Smooth:      boolOr(b.Smooth, true),
	}
}

// AnimatorOptions returns the seeded random source, if a seed is set.
func (b Blob) AnimatorOptions() []blob.Option {
	if b.Seed == 0 {
		return nil
	}
	return []blob.Option{blob.WithSeed(b.Seed)}
}

// Style returns the render style. The file must have been validated.
func (b Blob) Style() (render.Style, error) {
	th, err := theme.Parse(b.Theme, theme.Colors{From: b.Custom.From, Via: b.Custom.Via, To: b.Custom.To})
	if err != nil {
		return render.Style{}, err
	}
	size, err := render.ParseSize(b.Size)
	if err != nil {
		return render.Style{}, err
	}
	mode := theme.Light
	if b.Mode == "dark" {
		mode = theme.Dark
	}
	return render.Style{
		Theme:         th,
		Size:          size,
		Glow:          boolOr(b.Glow, true),
		GlowIntensity: b.GlowIntensity,
		Pulse:         b.Pulse,
		Effect3D:      b.Effect3D,
		Mode:          mode,
	}, nil
}

// CanvasOptions returns the canvas settings; zero fields keep canvas
// defaults.
func (p Paint) CanvasOptions() []paint.Option {
	var opts []paint.Option
	if p.Title != "" {
		opts = append(opts, paint.WithTitle(p.Title))
	}
	if p.Width > 0 && p.Height > 0 {
		opts = append(opts, paint.WithSize(p.Width, p.Height))
	}
	if p.DisplayWidth > 0 && p.DisplayHeight > 0 {
		opts = append(opts, paint.WithDisplaySize(p.DisplayWidth, p.DisplayHeight))
	}
	if p.Background != "" {
		opts = append(opts, paint.WithBackground(nyx.Hex(p.Background)))
	}
	return opts
}

// Replay draws the scripted strokes onto c.
func (p Paint) Replay(c *paint.Canvas) {
	for _, s := range p.Strokes {
		if len(s.Points) == 0 {
			continue
		}
		tool, err := paint.ParseTool(s.Tool)
		if err != nil {
			nyx.Logger().Warn("config: skipping stroke", "err", err)
			continue
		}
		c.SetTool(tool)
		if s.Color != "" {
			c.SetColor(nyx.Hex(s.Color))
		}
		c.StartStroke(nyx.Pt(s.Points[0][0], s.Points[0][1]))
		for _, pt := range s.Points[1:] {
			c.ContinueStroke(nyx.Pt(pt[0], pt[1]))
		}
		c.EndStroke()
	}
}
