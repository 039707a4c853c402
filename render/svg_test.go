package render

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/nyxui/nyx/theme"
)

func TestSVGWellFormed(t *testing.T) {
	styles := map[string]Style{
		"default": DefaultStyle(),
		"all": {
			Theme:         theme.Named{Preset: theme.Aurora},
			Size:          SizeXL,
			Glow:          true,
			GlowIntensity: 5,
			Pulse:         true,
			Effect3D:      true,
			Mode:          theme.Dark,
		},
		"bare": {Size: SizeSM},
	}
	for name, style := range styles {
		t.Run(name, func(t *testing.T) {
			doc := SVG(testFrame(12.5), style)
			dec := xml.NewDecoder(strings.NewReader(doc))
			for {
				_, err := dec.Token()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatalf("invalid XML: %v\n%s", err, doc)
				}
			}
		})
	}
}

func TestSVGContents(t *testing.T) {
	f := testFrame(12.5)
	style := Style{
		Theme:    theme.Named{Preset: theme.Sunset},
		Size:     SizeLG,
		Glow:     true,
		Pulse:    true,
		Effect3D: true,
	}
	doc := SVG(f, style)

	want := []string{
		`viewBox="0 0 100 100" width="320" height="320"`,
		`<stop offset="0%" stop-color="#f97316"/>`,
		`<stop offset="50%" stop-color="#ec4899"/>`,
		`<stop offset="100%" stop-color="#8b5cf6"/>`,
		`<filter id="nyx-blob-glow"`,
		`values="1;0.7;1" dur="2s"`,
		`translate(3 3) rotate(12.50 50 50)`,
		`translate(-1.5 -1.5) rotate(12.50 50 50)`,
		`d="` + f.Path + `"`,
		`filter="url(#nyx-blob-glow)"`,
	}
	for _, w := range want {
		if !strings.Contains(doc, w) {
			t.Errorf("SVG missing %q\n%s", w, doc)
		}
	}
}

func TestSVGOmitsDisabledEffects(t *testing.T) {
	doc := SVG(testFrame(0), Style{Size: SizeSM})
	for _, unwanted := range []string{"<filter", "<animate", "translate("} {
		if strings.Contains(doc, unwanted) {
			t.Errorf("SVG contains %q with effects disabled", unwanted)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.001, "0"},
		{3, "3"},
		{-1.5, "-1.5"},
		{0.7, "0.7"},
		{12.346, "12.35"},
		{100, "100"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
