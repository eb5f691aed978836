package frame

import (
	"fmt"
	"iter"

	"github.com/san-kum/tensile/internal/curve"
)

// Plot headroom relative to the fracture elongation and peak stress.
const (
	XPad = 1.05
	YPad = 1.2
)

const (
	XLabel = "Elongation ΔL (mm)"
	YLabel = "Stress (MPa)"
)

// BandKind identifies a shaded elongation range.
type BandKind int

const (
	BandElastic BandKind = iota
	BandYield
)

// Band is a shaded elongation interval.
type Band struct {
	Kind     BandKind
	From, To float64
	Label    string
}

// GuideKind identifies a dashed reference line.
type GuideKind int

const (
	GuideElasticLimit GuideKind = iota
	GuidePlateauEnd
	GuideFracture
	GuidePeakStress
)

// Guide is a dashed reference line. Vertical guides sit at an elongation,
// horizontal ones at a stress.
type Guide struct {
	Kind     GuideKind
	Vertical bool
	Value    float64
	Label    string
}

// Readout holds the current stress (MPa) and elongation (mm) shown in the plot.
type Readout struct {
	Stress     float64
	Elongation float64
}

func (r Readout) StressText() string {
	return fmt.Sprintf("Current stress: %.1f MPa", r.Stress)
}

func (r Readout) ElongationText() string {
	return fmt.Sprintf("Current ΔL: %.2f mm", r.Elongation)
}

// Frame describes one animation step.
type Frame struct {
	Index    int
	Total    int
	Final    bool
	Material string
	Color    string
	Title    string

	// Samples is the revealed prefix, up to and including Index. It aliases
	// the curve and must not be modified.
	Samples []curve.Sample
	Current curve.Sample

	XMax, YMax float64
	Bands      []Band
	Guides     []Guide
	Readout    Readout
	Specimen   Specimen
}

// Build describes frame i of c.
func Build(c *curve.Curve, i int) (Frame, error) {
	n := c.Len()
	if i < 0 || i >= n {
		return Frame{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}

	lm := c.Landmarks
	cur := c.Samples[i]
	final := i == n-1

	return Frame{
		Index:    i,
		Total:    n,
		Final:    final,
		Material: c.Material.DisplayName,
		Color:    c.Material.Color,
		Title:    fmt.Sprintf("Tensile Test - %s (ΔL × Stress)", c.Material.DisplayName),
		Samples:  c.Samples[: i+1 : i+1],
		Current:  cur,
		XMax:     lm.FractureElongation * XPad,
		YMax:     lm.PeakStress * YPad,
		Bands:    bands(lm),
		Guides:   guides(lm),
		Readout:  Readout{Stress: cur.Stress, Elongation: cur.Elongation},
		Specimen: buildSpecimen(lm, cur.Strain, final),
	}, nil
}

func bands(lm curve.Landmarks) []Band {
	b := []Band{{Kind: BandElastic, From: 0, To: lm.ElasticLimitElongation, Label: "Elastic zone"}}
	if lm.HasPlateau() {
		b = append(b, Band{Kind: BandYield, From: lm.ElasticLimitElongation, To: lm.PlateauEndElongation, Label: "Yield"})
	}
	return b
}

func guides(lm curve.Landmarks) []Guide {
	return []Guide{
		{Kind: GuideElasticLimit, Vertical: true, Value: lm.ElasticLimitElongation, Label: "Elastic limit"},
		{Kind: GuidePlateauEnd, Vertical: true, Value: lm.PlateauEndElongation, Label: "End of yield"},
		{Kind: GuideFracture, Vertical: true, Value: lm.FractureElongation, Label: "Fracture"},
		{Kind: GuidePeakStress, Value: lm.PeakStress, Label: "Peak stress"},
	}
}

// Sequence yields every frame of c in strain order.
func Sequence(c *curve.Curve) iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for i := 0; i < c.Len(); i++ {
			f, err := Build(c, i)
			if err != nil {
				return
			}
			if !yield(f) {
				return
			}
		}
	}
}

// Collect builds every frame of c.
func Collect(c *curve.Curve) []Frame {
	frames := make([]Frame, 0, c.Len())
	for f := range Sequence(c) {
		frames = append(frames, f)
	}
	return frames
}
