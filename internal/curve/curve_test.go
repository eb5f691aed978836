package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/san-kum/tensile/internal/material"
)

func generate(t *testing.T, name string) *Curve {
	t.Helper()
	c, err := Generate(material.MustLookup(name), DefaultOptions())
	if err != nil {
		t.Fatalf("generate %s: %v", name, err)
	}
	return c
}

func TestSteelScenario(t *testing.T) {
	steel := material.MustLookup("steel")
	c := generate(t, "steel")
	lm := c.Landmarks

	chk.Float64(t, "elastic limit strain", 1e-15, lm.ElasticLimitStrain, 0.00125)
	chk.Float64(t, "elastic limit elongation", 1e-12, lm.ElasticLimitElongation, 0.0625)
	chk.Float64(t, "plateau end strain", 1e-15, lm.PlateauEndStrain, 0.01125)
	chk.Float64(t, "plateau end elongation", 1e-12, lm.PlateauEndElongation, 0.5625)
	chk.Float64(t, "fracture elongation", 1e-12, lm.FractureElongation, 10)
	chk.Float64(t, "stress at zero", 0, c.Samples[0].Stress, 0)

	stress, regime := StressAt(steel, 0.00125, DefaultOptions())
	chk.Float64(t, "stress at elastic limit (MPa)", 1e-9, stress/pascalsPerMPa, 250)
	if regime != RegimeElastic {
		t.Errorf("regime at elastic limit = %v, want elastic", regime)
	}
}

func TestElasticContinuity(t *testing.T) {
	for _, p := range material.All() {
		t.Run(p.Name, func(t *testing.T) {
			limit := p.ElasticLimitStrain()
			if math.Abs(limit-p.YieldStress/p.ElasticModulus) > 0 {
				t.Errorf("elastic limit %g != yield/E", limit)
			}
			stress, _ := StressAt(p, limit, DefaultOptions())
			want := p.ElasticModulus * limit
			if math.Abs(stress-want) > 1e-6*want {
				t.Errorf("stress at limit = %g, want %g", stress, want)
			}
			if math.Abs(stress-p.YieldStress) > 1e-6*p.YieldStress {
				t.Errorf("stress at limit = %g, want yield %g", stress, p.YieldStress)
			}
		})
	}
}

func TestStrainDomain(t *testing.T) {
	for _, p := range material.All() {
		t.Run(p.Name, func(t *testing.T) {
			c := generate(t, p.Name)
			if c.Len() != DefaultOptions().Total() {
				t.Errorf("expected %d samples, got %d", DefaultOptions().Total(), c.Len())
			}
			strains := c.Strains()
			if strains[0] != 0 {
				t.Errorf("first strain = %g, want 0", strains[0])
			}
			if strains[len(strains)-1] != p.MaxStrain {
				t.Errorf("last strain = %g, want %g", strains[len(strains)-1], p.MaxStrain)
			}
			for i := 1; i < len(strains); i++ {
				if strains[i] <= strains[i-1] {
					t.Fatalf("strain not increasing at %d: %g <= %g", i, strains[i], strains[i-1])
				}
			}
			if strains[DefaultFineSamples-1] != p.PlateauEndStrain() {
				t.Errorf("fine partition ends at %g, want plateau end %g",
					strains[DefaultFineSamples-1], p.PlateauEndStrain())
			}
		})
	}
}

func TestElongationIsStrainTimesGauge(t *testing.T) {
	for _, name := range material.Names() {
		c := generate(t, name)
		for i, s := range c.Samples {
			if s.Elongation != s.Strain*GaugeLength {
				t.Errorf("%s[%d]: elongation %g != strain*50 (%g)", name, i, s.Elongation, s.Strain*GaugeLength)
			}
		}
	}
}

func TestPeak(t *testing.T) {
	for _, name := range material.Names() {
		t.Run(name, func(t *testing.T) {
			c := generate(t, name)
			stresses := c.Stresses()
			peak := c.Landmarks.PeakIndex

			max := stresses[0]
			for _, s := range stresses {
				max = math.Max(max, s)
			}
			if c.Landmarks.PeakStress != max {
				t.Errorf("peak stress %g != max stress %g", c.Landmarks.PeakStress, max)
			}
			for i := 0; i < peak; i++ {
				if stresses[i] >= max {
					t.Errorf("index %d reaches the max before the peak index %d", i, peak)
				}
			}
			for i := peak + 1; i < len(stresses); i++ {
				if stresses[i] > stresses[i-1] {
					t.Errorf("stress rises after peak at %d", i)
				}
			}
		})
	}
}

// ripplePeaked has hardening too weak to overtake the plateau ripple, so the
// peak sits on the plateau and the rest of the curve softens.
func ripplePeaked() material.Preset {
	return material.Preset{
		Name: "test", ElasticModulus: 200e9, YieldStress: 250e6,
		MaxStrain: 0.02, HardeningExponent: 0.5, HardeningCoefficient: 1e6,
		PlateauWidth: 0.01,
	}
}

func TestSoftening(t *testing.T) {
	c, err := Generate(ripplePeaked(), DefaultOptions())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	lm := c.Landmarks
	n := c.Len()

	if lm.PeakIndex >= DefaultFineSamples {
		t.Fatalf("expected plateau peak, got index %d", lm.PeakIndex)
	}
	if c.Samples[lm.PeakIndex].Regime != RegimeYield {
		t.Errorf("peak regime = %v, want yield", c.Samples[lm.PeakIndex].Regime)
	}

	for i := lm.PeakIndex + 1; i < n; i++ {
		if c.Samples[i].Regime != RegimeNecking {
			t.Errorf("sample %d regime = %v, want necking", i, c.Samples[i].Regime)
		}
		if c.Samples[i].Stress >= c.Samples[i-1].Stress {
			t.Errorf("stress not decreasing at %d", i)
		}
	}

	want := lm.PeakStress * (1 - 0.5*float64(n-1-lm.PeakIndex)/float64(n-lm.PeakIndex))
	chk.Float64(t, "last stress", 1e-9, c.Samples[n-1].Stress, want)
	if c.Samples[n-1].Stress < lm.PeakStress/2 {
		t.Error("softening fell below half the peak")
	}
}

func TestNoPlateau(t *testing.T) {
	c := generate(t, "copper")
	if c.Landmarks.HasPlateau() {
		t.Error("copper should have no plateau")
	}
	for i, s := range c.Samples {
		if s.Regime == RegimeYield {
			t.Errorf("sample %d in yield regime without plateau", i)
		}
		if math.IsNaN(s.Stress) || math.IsInf(s.Stress, 0) {
			t.Fatalf("sample %d stress not finite: %g", i, s.Stress)
		}
	}
}

func TestRegimeOrder(t *testing.T) {
	c := generate(t, "steel")
	prev := RegimeElastic
	for i, s := range c.Samples {
		if s.Regime < prev {
			t.Fatalf("regime went back from %v to %v at %d", prev, s.Regime, i)
		}
		prev = s.Regime
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(t, "aluminum")
	b := generate(t, "aluminum")
	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			t.Fatalf("sample %d differs between runs", i)
		}
	}
}

func TestGenerate_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Options)
	}{
		{"one fine sample", func(o *Options) { o.FineSamples = 1 }},
		{"zero coarse samples", func(o *Options) { o.CoarseSamples = 0 }},
		{"negative ripple", func(o *Options) { o.RippleAmplitude = -0.1 }},
		{"ripple of one", func(o *Options) { o.RippleAmplitude = 1 }},
		{"softening above one", func(o *Options) { o.SofteningDrop = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mod(&opts)
			_, err := Generate(material.MustLookup("steel"), opts)
			if !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("expected ErrInvalidOptions, got %v", err)
			}
		})
	}
}

func TestGenerate_DegeneratePreset(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*material.Preset)
	}{
		{"zero modulus", func(p *material.Preset) { p.ElasticModulus = 0 }},
		{"negative plateau", func(p *material.Preset) { p.PlateauWidth = -0.01 }},
		{"max strain inside plateau", func(p *material.Preset) { p.MaxStrain = 0.005 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := material.MustLookup("steel")
			tt.mod(&p)
			_, err := Generate(p, DefaultOptions())
			if !errors.Is(err, ErrDegeneratePreset) {
				t.Errorf("expected ErrDegeneratePreset, got %v", err)
			}
		})
	}
}

func TestCustomSampleCounts(t *testing.T) {
	opts := DefaultOptions()
	opts.FineSamples = 5
	opts.CoarseSamples = 3
	c, err := Generate(material.MustLookup("aluminum"), opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if c.Len() != 8 {
		t.Errorf("expected 8 samples, got %d", c.Len())
	}
}

func TestResample(t *testing.T) {
	c := generate(t, "steel")

	out := c.Resample(100)
	if len(out) != 100 {
		t.Fatalf("expected 100 points, got %d", len(out))
	}
	if out[0] != 0 {
		t.Errorf("first resampled stress = %g, want 0", out[0])
	}
	last := c.Samples[c.Len()-1].Stress
	if math.Abs(out[99]-last) > 1e-9 {
		t.Errorf("last resampled stress = %g, want %g", out[99], last)
	}
	for i, v := range out {
		if v < 0 || v > c.Landmarks.PeakStress+1e-9 {
			t.Errorf("resampled[%d] = %g outside [0, peak]", i, v)
		}
	}

	if c.Resample(0) != nil {
		t.Error("Resample(0) should be nil")
	}
	if got := c.Resample(1); len(got) != 1 || got[0] != 0 {
		t.Errorf("Resample(1) = %v", got)
	}
}

func TestRegimeString(t *testing.T) {
	if RegimeNecking.String() != "necking" {
		t.Errorf("got %q", RegimeNecking.String())
	}
	if Regime(9).String() != "regime(9)" {
		t.Errorf("got %q", Regime(9).String())
	}
}
