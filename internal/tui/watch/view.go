package watch

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"

	"github.com/nyxui/nyx"
	"github.com/nyxui/nyx/theme"
)

// upperHalf draws the top pixel in the foreground and the bottom one in
// the background of a single cell.
const upperHalf = "▀"

var (
	lightBackdrop = nyx.Hex("#f5f5f5")
	darkBackdrop  = nyx.Hex("#111111")
)

// Backdrop is the color the blob is composited over in mode m.
func Backdrop(m theme.Mode) nyx.RGBA {
	if m == theme.Dark {
		return darkBackdrop
	}
	return lightBackdrop
}

// View renders the title, the blob, the status line and key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frame, mode := m.view.state()
	snap := m.animator.Snapshot()
	cfg := m.animator.Config()
	pulse := m.renderer.Style().Pulse

	var b strings.Builder
	b.WriteString(titleStyle.Render("nyx"))
	b.WriteString("\n")
	b.WriteString(Art(m.renderer.Draw(frame), m.cells, Backdrop(mode)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"complexity %d  speed %d  cycle %d  %3.0f°  %s %s %s %s %s",
		cfg.Complexity, cfg.Speed, snap.Cycles, snap.Rotation,
		flag("hover", snap.Hovered), flag("press", snap.Clicked),
		flag("smooth", cfg.Smooth), flag("dark", mode == theme.Dark),
		flag("pulse", pulse),
	)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func flag(name string, on bool) string {
	if on {
		return onStyle.Render(name)
	}
	return name + ":off"
}

// Art scales img to cols columns and renders it with half-block cells, two
// pixel rows per line, composited over bg. Cells showing only bg are left
// blank.
func Art(img image.Image, cols int, bg nyx.RGBA) string {
	if cols <= 0 || img.Bounds().Empty() {
		return ""
	}
	rows := (cols + 1) / 2

	canvas := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	back := bg.NRGBA()
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(back), image.Point{}, draw.Src)
	draw.BiLinear.Scale(canvas, canvas.Bounds(), img, img.Bounds(), draw.Over, nil)

	plain := color.RGBAModel.Convert(back).(color.RGBA)
	styles := make(map[[2]color.RGBA]lipgloss.Style)

	var b strings.Builder
	for y := 0; y < rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < cols; x++ {
			top := canvas.RGBAAt(x, 2*y)
			bottom := canvas.RGBAAt(x, 2*y+1)
			if top == plain && bottom == plain {
				b.WriteByte(' ')
				continue
			}
			pair := [2]color.RGBA{top, bottom}
			st, ok := styles[pair]
			if !ok {
				st = lipgloss.NewStyle().
					Foreground(lipgloss.Color(hexOf(top))).
					Background(lipgloss.Color(hexOf(bottom)))
				styles[pair] = st
			}
			b.WriteString(st.Render(upperHalf))
		}
	}
	return b.String()
}

func hexOf(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
