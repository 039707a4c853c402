package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/nyxui/nyx"
	"github.com/nyxui/nyx/blob"
)

const (
	gradientID = "nyx-blob-gradient"
	glowID     = "nyx-blob-glow"
)

// SVG returns a standalone SVG document drawing f with style. The document
// mirrors Draw: glow filter, 3D copies, rotation, and a looping opacity
// animation when Pulse is set.
func SVG(f blob.Frame, style Style) string {
	style = style.normalized()
	px := style.Size.Pixels()

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		ViewBox, ViewBox, px, px)

	b.WriteString("  <defs>\n")
	fmt.Fprintf(&b, `    <linearGradient id="%s" x1="0%%" y1="0%%" x2="100%%" y2="100%%">`+"\n", gradientID)
	for _, stop := range style.Theme.Stops() {
		fmt.Fprintf(&b, `      <stop offset="%s%%" stop-color="%s"%s/>`+"\n",
			formatNumber(stop.Offset*100), stop.Color.HexString(), opacityAttr("stop-opacity", stop.Color.A))
	}
	b.WriteString("    </linearGradient>\n")
	if style.Glow {
		// The renderer's sigma is in output pixels; the filter works in
		// viewBox units.
		sigma := style.glowRadius() * ViewBox / float64(px)
		accent := style.Theme.Accent()
		fmt.Fprintf(&b, `    <filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`+"\n", glowID)
		fmt.Fprintf(&b, `      <feGaussianBlur in="SourceAlpha" stdDeviation="%s" result="blur"/>`+"\n", formatNumber(sigma))
		fmt.Fprintf(&b, `      <feFlood flood-color="%s" flood-opacity="%s"/>`+"\n", accent.HexString(), formatNumber(glowAlpha))
		b.WriteString(`      <feComposite in2="blur" operator="in" result="glow"/>` + "\n")
		b.WriteString("      <feMerge><feMergeNode in=\"glow\"/><feMergeNode in=\"SourceGraphic\"/></feMerge>\n")
		b.WriteString("    </filter>\n")
	}
	b.WriteString("  </defs>\n")

	d := html.EscapeString(f.Path)
	rotate := fmt.Sprintf("rotate(%s %d %d)", nyx.FormatCoord(f.Rotation), ViewBox/2, ViewBox/2)

	b.WriteString("  <g>\n")
	if style.Pulse {
		fmt.Fprintf(&b, `    <animate attributeName="opacity" values="1;%s;1" dur="%s" repeatCount="indefinite"/>`+"\n",
			formatNumber(PulseMinOpacity), PulsePeriod)
	}

	if style.Effect3D {
		for _, layer := range []struct {
			offset nyx.Point
			color  nyx.RGBA
		}{
			{shadowOffset, style.Mode.Shadow()},
			{highlightOffset, style.Mode.Highlight()},
		} {
			fmt.Fprintf(&b, `    <path d="%s" fill="%s"%s transform="translate(%s %s) %s"/>`+"\n",
				d, layer.color.HexString(), opacityAttr("fill-opacity", layer.color.A),
				formatNumber(layer.offset.X), formatNumber(layer.offset.Y), rotate)
		}
	}

	fmt.Fprintf(&b, `    <path d="%s" fill="url(#%s)"`, d, gradientID)
	if style.Glow {
		fmt.Fprintf(&b, ` filter="url(#%s)"`, glowID)
	}
	fmt.Fprintf(&b, ` transform="%s"/>`+"\n", rotate)

	b.WriteString("  </g>\n</svg>\n")
	return b.String()
}

func opacityAttr(name string, a float64) string {
	if a >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, name, formatNumber(a))
}

// formatNumber writes v with at most two decimals and no trailing zeros.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
