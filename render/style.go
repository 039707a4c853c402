package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyxui/nyx/theme"
)

// ErrUnknownSize is returned by ParseSize for names other than sm, md, lg, xl.
var ErrUnknownSize = errors.New("render: unknown size")

// Size is the square edge of a rendered blob.
type Size string

// Supported sizes.
const (
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
	SizeXL Size = "xl"
)

// Pixels returns the edge length in pixels. Unknown sizes render as md.
func (s Size) Pixels() int {
	switch s {
	case SizeSM:
		return 160
	case SizeLG:
		return 320
	case SizeXL:
		return 400
	default:
		return 240
	}
}

// ParseSize resolves a size name; empty selects md.
func ParseSize(name string) (Size, error) {
	switch s := Size(strings.ToLower(strings.TrimSpace(name))); s {
	case "":
		return SizeMD, nil
	case SizeSM, SizeMD, SizeLG, SizeXL:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSize, name)
	}
}

// Glow intensity bounds.
const (
	MinGlowIntensity     = 1
	MaxGlowIntensity     = 5
	DefaultGlowIntensity = 3
)

// Style is the visual configuration of a rendered blob.
type Style struct {
	Theme         theme.Theme // nil renders the primary preset
	Size          Size
	Glow          bool
	GlowIntensity int // 1..5
	Pulse         bool
	Effect3D      bool
	Mode          theme.Mode
}

// DefaultStyle returns a md primary blob with glow.
func DefaultStyle() Style {
	return Style{
		Theme:         theme.Named{Preset: theme.Primary},
		Size:          SizeMD,
		Glow:          true,
		GlowIntensity: DefaultGlowIntensity,
	}
}

func (s Style) normalized() Style {
	if s.Theme == nil {
		s.Theme = theme.Named{Preset: theme.Primary}
	}
	if s.Size == "" {
		s.Size = SizeMD
	}
	switch {
	case s.GlowIntensity == 0:
		s.GlowIntensity = DefaultGlowIntensity
	case s.GlowIntensity < MinGlowIntensity:
		s.GlowIntensity = MinGlowIntensity
	case s.GlowIntensity > MaxGlowIntensity:
		s.GlowIntensity = MaxGlowIntensity
	}
	return s
}

// glowRadius is the blur sigma of the glow, in output pixels.
func (s Style) glowRadius() float64 {
	return 2 * float64(s.GlowIntensity)
}
