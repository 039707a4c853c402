package paint

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Window chrome, in pixels.
const (
	windowBorder  = 2
	titleBarH     = 18
	statusBarH    = 18
	textPadding   = 4
	textBaselineY = 13
)

var (
	chromeGray   = color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
	titleBlue    = color.RGBA{B: 0x80, A: 0xff}
	captionWhite = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	statusBlack  = color.RGBA{A: 0xff}
)

// Window renders the canvas as a retro paint window: a title bar with the
// caption, the bitmap scaled to the display size, and a status bar with
// the current status line or the active tool.
func (c *Canvas) Window() *image.RGBA {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	bitmap := cloneRGBA(c.img)
	title := c.title
	dw, dh := c.displayW, c.displayH
	tool := c.tool
	c.mu.Unlock()

	status := c.Status()
	if status == "" {
		status = "Tool: " + tool.String()
	}

	w := dw + 2*windowBorder
	h := titleBarH + dh + statusBarH + 2*windowBorder
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(chromeGray), image.Point{}, draw.Src)

	titleRect := image.Rect(windowBorder, windowBorder, w-windowBorder, windowBorder+titleBarH)
	draw.Draw(dst, titleRect, image.NewUniform(titleBlue), image.Point{}, draw.Src)
	drawText(dst.SubImage(titleRect).(*image.RGBA), title, captionWhite)

	canvasRect := image.Rect(windowBorder, titleRect.Max.Y, windowBorder+dw, titleRect.Max.Y+dh)
	draw.BiLinear.Scale(dst, canvasRect, bitmap, bitmap.Bounds(), draw.Src, nil)

	statusRect := image.Rect(windowBorder, canvasRect.Max.Y, w-windowBorder, canvasRect.Max.Y+statusBarH)
	drawText(dst.SubImage(statusRect).(*image.RGBA), status, statusBlack)
	return dst
}

// drawText writes s in the basic bitmap font, clipped to dst's bounds.
func drawText(dst *image.RGBA, s string, col color.Color) {
	origin := dst.Bounds().Min
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(origin.X+textPadding, origin.Y+textBaselineY),
	}
	d.DrawString(s)
}
