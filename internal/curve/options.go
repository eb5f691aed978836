package curve

import "fmt"

const (
	DefaultFineSamples     = 40
	DefaultCoarseSamples   = 40
	DefaultRippleAmplitude = 0.05
	DefaultSofteningDrop   = 0.5
)

// Options tunes the visual shape of the generated curve.
type Options struct {
	// FineSamples covers [0, plateau end], both ends included.
	FineSamples int
	// CoarseSamples covers (plateau end, max strain].
	CoarseSamples int
	// RippleAmplitude is the plateau ripple as a fraction of the yield stress.
	RippleAmplitude float64
	// SofteningDrop is the fraction of the peak stress lost by the last sample.
	SofteningDrop float64
}

func DefaultOptions() Options {
	return Options{
		FineSamples:     DefaultFineSamples,
		CoarseSamples:   DefaultCoarseSamples,
		RippleAmplitude: DefaultRippleAmplitude,
		SofteningDrop:   DefaultSofteningDrop,
	}
}

func (o Options) Validate() error {
	if o.FineSamples < 2 {
		return fmt.Errorf("%w: fine samples %d < 2", ErrInvalidOptions, o.FineSamples)
	}
	if o.CoarseSamples < 1 {
		return fmt.Errorf("%w: coarse samples %d < 1", ErrInvalidOptions, o.CoarseSamples)
	}
	if o.RippleAmplitude < 0 || o.RippleAmplitude >= 1 {
		return fmt.Errorf("%w: ripple amplitude %g outside [0, 1)", ErrInvalidOptions, o.RippleAmplitude)
	}
	if o.SofteningDrop < 0 || o.SofteningDrop > 1 {
		return fmt.Errorf("%w: softening drop %g outside [0, 1]", ErrInvalidOptions, o.SofteningDrop)
	}
	return nil
}

// Total is the number of samples a curve generated with o will have.
func (o Options) Total() int {
	return o.FineSamples + o.CoarseSamples
}
