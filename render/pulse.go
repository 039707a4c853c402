package render

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse period and opacity range.
const (
	PulsePeriod     = 2 * time.Second
	PulseMinOpacity = 0.7
)

// Pulse is a looping opacity tween 1 -> 0.7 -> 1.
type Pulse struct {
	seq   *gween.Sequence
	value float64
}

// NewPulse returns a pulse at full opacity.
func NewPulse() *Pulse {
	half := float32(PulsePeriod.Seconds() / 2)
	seq := gween.NewSequence(
		gween.New(1, PulseMinOpacity, half, ease.InOutSine),
		gween.New(PulseMinOpacity, 1, half, ease.InOutSine),
	)
	seq.SetLoop(-1)
	return &Pulse{seq: seq, value: 1}
}

// Advance moves the pulse forward by dt and returns the new opacity.
func (p *Pulse) Advance(dt time.Duration) float64 {
	if dt <= 0 {
		return p.value
	}
	v, _, _ := p.seq.Update(float32(dt.Seconds()))
	p.value = float64(v)
	return p.value
}

// Opacity returns the current opacity in [0.7, 1].
func (p *Pulse) Opacity() float64 {
	return p.value
}

// Reset rewinds to full opacity.
func (p *Pulse) Reset() {
	p.seq.Reset()
	p.value = 1
}
