package paint

import (
	"fmt"
	"strings"

	"github.com/nyxui/nyx"
)

// Tool is the active drawing tool.
type Tool int

const (
	// Brush paints with the selected color.
	Brush Tool = iota
	// Eraser paints with the background color.
	Eraser
)

// Stroke widths in bitmap pixels.
const (
	BrushWidth  = 4
	EraserWidth = 20
)

// String returns "brush" or "eraser".
func (t Tool) String() string {
	if t == Eraser {
		return "eraser"
	}
	return "brush"
}

// Width returns the stroke width of the tool.
func (t Tool) Width() float64 {
	if t == Eraser {
		return EraserWidth
	}
	return BrushWidth
}

// ParseTool resolves "brush" or "eraser".
func ParseTool(name string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "brush":
		return Brush, nil
	case "eraser":
		return Eraser, nil
	default:
		return Brush, fmt.Errorf("paint: unknown tool %q", name)
	}
}

// ClassicPalette is the 28 color palette of the retro paint window.
var ClassicPalette = hexPalette(
	"#000000", "#808080", "#800000", "#808000", "#008000", "#008080", "#000080",
	"#800080", "#808040", "#004040", "#0080ff", "#004080", "#8000ff", "#804000",
	"#ffffff", "#c0c0c0", "#ff0000", "#ffff00", "#00ff00", "#00ffff", "#0000ff",
	"#ff00ff", "#ffff80", "#00ff80", "#80ffff", "#8080ff", "#ff0080", "#ff8040",
)

func hexPalette(hexes ...string) []nyx.RGBA {
	p := make([]nyx.RGBA, len(hexes))
	for i, h := range hexes {
		p[i] = nyx.Hex(h)
	}
	return p
}
