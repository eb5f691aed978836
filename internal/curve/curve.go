package curve

import (
	"fmt"
	"math"
	"sort"

	"github.com/cpmech/gosl/utl"
	"github.com/san-kum/tensile/internal/material"
)

// GaugeLength is the specimen reference length in mm.
const GaugeLength = 50.0

const pascalsPerMPa = 1e6

// Regime names the part of the response a sample belongs to.
type Regime int

const (
	RegimeElastic Regime = iota
	RegimeYield
	RegimeHardening
	RegimeNecking
)

func (r Regime) String() string {
	switch r {
	case RegimeElastic:
		return "elastic"
	case RegimeYield:
		return "yield"
	case RegimeHardening:
		return "hardening"
	case RegimeNecking:
		return "necking"
	}
	return fmt.Sprintf("regime(%d)", int(r))
}

// Sample is one point of the response. Elongation is in mm, Stress in MPa.
type Sample struct {
	Strain     float64
	Elongation float64
	Stress     float64
	Regime     Regime
}

// Landmarks are derived once per curve and used for plot bounds and guides.
type Landmarks struct {
	ElasticLimitStrain     float64
	PlateauEndStrain       float64
	ElasticLimitElongation float64
	PlateauEndElongation   float64
	FractureElongation     float64
	PeakStress             float64 // MPa
	PeakIndex              int
}

// HasPlateau reports whether the yield plateau spans a non-zero elongation.
func (l Landmarks) HasPlateau() bool {
	return l.PlateauEndElongation > l.ElasticLimitElongation
}

// Curve is a generated response. It is not modified after Generate returns.
type Curve struct {
	Material  material.Preset
	Samples   []Sample
	Landmarks Landmarks
}

// StressAt evaluates the pre-softening response at strain. The result is in Pa.
func StressAt(p material.Preset, strain float64, opts Options) (float64, Regime) {
	elastic := p.ElasticLimitStrain()
	plateauEnd := p.PlateauEndStrain()

	switch {
	case strain <= elastic:
		return p.ElasticModulus * strain, RegimeElastic
	case strain <= plateauEnd:
		phase := (strain - elastic) / (plateauEnd - elastic)
		return p.YieldStress + opts.RippleAmplitude*p.YieldStress*math.Sin(math.Pi*phase), RegimeYield
	default:
		plastic := strain - plateauEnd
		return p.YieldStress + p.HardeningCoefficient*math.Pow(plastic, p.HardeningExponent), RegimeHardening
	}
}

// Generate builds the full response for p.
func Generate(p material.Preset, opts Options) (*Curve, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := checkPreset(p); err != nil {
		return nil, err
	}

	strains := strainDomain(p, opts)
	n := len(strains)
	stresses := make([]float64, n)
	regimes := make([]Regime, n)
	for i, e := range strains {
		stresses[i], regimes[i] = StressAt(p, e, opts)
	}

	peak := argmax(stresses)
	for i := peak + 1; i < n; i++ {
		drop := float64(i-peak) / float64(n-peak)
		stresses[i] = stresses[peak] * (1 - opts.SofteningDrop*drop)
		regimes[i] = RegimeNecking
	}

	samples := make([]Sample, n)
	for i, e := range strains {
		samples[i] = Sample{
			Strain:     e,
			Elongation: e * GaugeLength,
			Stress:     stresses[i] / pascalsPerMPa,
			Regime:     regimes[i],
		}
	}

	elastic := p.ElasticLimitStrain()
	plateauEnd := p.PlateauEndStrain()
	return &Curve{
		Material: p,
		Samples:  samples,
		Landmarks: Landmarks{
			ElasticLimitStrain:     elastic,
			PlateauEndStrain:       plateauEnd,
			ElasticLimitElongation: elastic * GaugeLength,
			PlateauEndElongation:   plateauEnd * GaugeLength,
			FractureElongation:     p.MaxStrain * GaugeLength,
			PeakStress:             samples[peak].Stress,
			PeakIndex:              peak,
		},
	}, nil
}

func checkPreset(p material.Preset) error {
	if p.ElasticModulus <= 0 || p.YieldStress <= 0 {
		return fmt.Errorf("%w: %s needs positive modulus and yield stress", ErrDegeneratePreset, p.Name)
	}
	if p.PlateauWidth < 0 {
		return fmt.Errorf("%w: %s has negative plateau width", ErrDegeneratePreset, p.Name)
	}
	if p.MaxStrain <= p.PlateauEndStrain() {
		return fmt.Errorf("%w: %s max strain %g does not exceed plateau end %g",
			ErrDegeneratePreset, p.Name, p.MaxStrain, p.PlateauEndStrain())
	}
	return nil
}

// strainDomain concatenates a fine partition of [0, plateau end] with a
// coarse partition of (plateau end, max strain].
func strainDomain(p material.Preset, opts Options) []float64 {
	plateauEnd := p.PlateauEndStrain()

	fine := utl.LinSpace(0, plateauEnd, opts.FineSamples)
	fine[0], fine[len(fine)-1] = 0, plateauEnd

	coarse := utl.LinSpace(plateauEnd, p.MaxStrain, opts.CoarseSamples+1)[1:]
	coarse[len(coarse)-1] = p.MaxStrain

	strains := make([]float64, 0, len(fine)+len(coarse))
	strains = append(strains, fine...)
	return append(strains, coarse...)
}

// argmax returns the first index holding the maximum value.
func argmax(xs []float64) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}
	return best
}

// Len is the number of samples.
func (c *Curve) Len() int {
	return len(c.Samples)
}

// At returns sample i. It panics when i is out of range.
func (c *Curve) At(i int) Sample {
	return c.Samples[i]
}

// Strains returns the strain sequence.
func (c *Curve) Strains() []float64 {
	out := make([]float64, len(c.Samples))
	for i, s := range c.Samples {
		out[i] = s.Strain
	}
	return out
}

// Elongations returns the elongation sequence in mm.
func (c *Curve) Elongations() []float64 {
	out := make([]float64, len(c.Samples))
	for i, s := range c.Samples {
		out[i] = s.Elongation
	}
	return out
}

// Stresses returns the stress sequence in MPa.
func (c *Curve) Stresses() []float64 {
	out := make([]float64, len(c.Samples))
	for i, s := range c.Samples {
		out[i] = s.Stress
	}
	return out
}

// Resample interpolates stress onto n evenly spaced elongations from zero to
// the fracture elongation. Fixed-width charts need this since the sample
// spacing changes at the plateau end.
func (c *Curve) Resample(n int) []float64 {
	if n <= 0 || len(c.Samples) == 0 {
		return nil
	}
	if n == 1 {
		return []float64{c.Samples[0].Stress}
	}

	last := c.Samples[len(c.Samples)-1]
	out := make([]float64, n)
	for k := range out {
		x := last.Elongation * float64(k) / float64(n-1)
		j := sort.Search(len(c.Samples), func(i int) bool { return c.Samples[i].Elongation >= x })
		switch {
		case j == 0:
			out[k] = c.Samples[0].Stress
		case j >= len(c.Samples):
			out[k] = last.Stress
		default:
			a, b := c.Samples[j-1], c.Samples[j]
			t := (x - a.Elongation) / (b.Elongation - a.Elongation)
			out[k] = a.Stress + t*(b.Stress-a.Stress)
		}
	}
	return out
}
