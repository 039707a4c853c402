package blob

import "time"

// Params are the shape constants selected by a complexity level.
type Params struct {
	Points   int     // anchor count
	Variance float64 // relative radius jitter
	Tension  float64 // Catmull-Rom control point scale
}

// complexityTable is indexed by complexity-1.
var complexityTable = [...]Params{
	{Points: 6, Variance: 0.15, Tension: 0.20},
	{Points: 8, Variance: 0.25, Tension: 0.30},
	{Points: 10, Variance: 0.30, Tension: 0.40},
	{Points: 12, Variance: 0.40, Tension: 0.45},
	{Points: 16, Variance: 0.50, Tension: 0.50},
}

// cycleTable is indexed by speed-1; faster speeds morph sooner.
var cycleTable = [...]time.Duration{
	12000 * time.Millisecond,
	9000 * time.Millisecond,
	6000 * time.Millisecond,
	4000 * time.Millisecond,
	2000 * time.Millisecond,
}

const (
	// MinLevel and MaxLevel bound complexity and speed.
	MinLevel = 1
	MaxLevel = 5

	// DefaultLevel is used for a zero complexity or speed.
	DefaultLevel = 3

	// InterpolationTension is the fixed tension used when re-deriving
	// control points for an interpolated frame.
	InterpolationTension = 0.4

	baseRadius    = 40.0
	hoverRadius   = 42.0
	clickRadius   = 38.0
	minRadiusFrac = 0.6
)

// ClampLevel maps a complexity or speed value into [MinLevel, MaxLevel].
// Zero selects DefaultLevel.
func ClampLevel(level int) int {
	switch {
	case level == 0:
		return DefaultLevel
	case level < MinLevel:
		return MinLevel
	case level > MaxLevel:
		return MaxLevel
	}
	return level
}

// ParamsFor returns the shape constants for a complexity level.
func ParamsFor(complexity int) Params {
	return complexityTable[ClampLevel(complexity)-1]
}

// CycleDuration returns the morph cycle length for a speed level.
func CycleDuration(speed int) time.Duration {
	return cycleTable[ClampLevel(speed)-1]
}

// BaseRadius returns the unperturbed blob radius for an interaction state.
// Click is checked first, so a pressed blob squeezes in even while hovered.
func BaseRadius(hovered, clicked bool) float64 {
	switch {
	case clicked:
		return clickRadius
	case hovered:
		return hoverRadius
	}
	return baseRadius
}
