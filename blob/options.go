package blob

// Option configures an Animator during creation.
type Option func(*animatorOptions)

type animatorOptions struct {
	rnd Rand
}

// WithRand injects the random source used for shape generation and
// rotation steps. Tests pass a fixed sequence to get exact paths.
func WithRand(r Rand) Option {
	return func(o *animatorOptions) {
		o.rnd = r
	}
}

// WithSeed selects a seeded source, giving reproducible animations.
func WithSeed(seed uint64) Option {
	return func(o *animatorOptions) {
		o.rnd = NewRand(seed)
	}
}

// Sequence returns a Rand that cycles through vals. An empty list yields 0.5.
func Sequence(vals ...float64) Rand {
	i := 0
	return func() float64 {
		if len(vals) == 0 {
			return 0.5
		}
		v := vals[i%len(vals)]
		i++
		return v
	}
}
