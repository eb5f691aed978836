package frame_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tensile/internal/curve"
	"github.com/san-kum/tensile/internal/frame"
	"github.com/san-kum/tensile/internal/material"
)

func mustCurve(name string) *curve.Curve {
	c, err := curve.Generate(material.MustLookup(name), curve.DefaultOptions())
	Expect(err).NotTo(HaveOccurred())
	return c
}

var _ = Describe("Build", func() {
	var c *curve.Curve

	BeforeEach(func() {
		c = mustCurve("steel")
	})

	It("reveals the prefix up to and including the index", func() {
		f, err := frame.Build(c, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Samples).To(HaveLen(11))
		Expect(f.Samples[10]).To(Equal(c.Samples[10]))
		Expect(f.Current).To(Equal(c.Samples[10]))
		Expect(f.Index).To(Equal(10))
		Expect(f.Total).To(Equal(c.Len()))
		Expect(f.Final).To(BeFalse())
	})

	It("limits the prefix capacity so callers cannot grow into the curve", func() {
		f, err := frame.Build(c, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(cap(f.Samples)).To(Equal(4))
		_ = append(f.Samples, curve.Sample{Stress: -1})
		Expect(c.Samples[4].Stress).NotTo(Equal(-1.0))
	})

	It("rejects indices outside the curve", func() {
		_, err := frame.Build(c, -1)
		Expect(err).To(MatchError(frame.ErrIndexOutOfRange))
		_, err = frame.Build(c, c.Len())
		Expect(err).To(MatchError(frame.ErrIndexOutOfRange))
	})

	It("pads the plot bounds around fracture and peak", func() {
		f, err := frame.Build(c, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.XMax).To(BeNumerically("~", 10*1.05, 1e-12))
		Expect(f.YMax).To(BeNumerically("~", c.Landmarks.PeakStress*1.2, 1e-9))
	})

	It("titles the plot with the material name", func() {
		f, _ := frame.Build(c, 0)
		Expect(f.Title).To(Equal("Tensile Test - Steel (ΔL × Stress)"))
		Expect(f.Material).To(Equal("Steel"))
		Expect(f.Color).To(Equal("blue"))
	})

	It("formats the readout", func() {
		f, _ := frame.Build(c, 0)
		Expect(f.Readout.StressText()).To(Equal("Current stress: 0.0 MPa"))
		Expect(f.Readout.ElongationText()).To(Equal("Current ΔL: 0.00 mm"))

		last, _ := frame.Build(c, c.Len()-1)
		Expect(last.Readout.ElongationText()).To(Equal("Current ΔL: 10.00 mm"))
	})

	Describe("bands and guides", func() {
		It("shades elastic and yield regions for a material with a plateau", func() {
			f, _ := frame.Build(c, 0)
			Expect(f.Bands).To(HaveLen(2))
			Expect(f.Bands[0].Kind).To(Equal(frame.BandElastic))
			Expect(f.Bands[0].To).To(BeNumerically("~", 0.0625, 1e-12))
			Expect(f.Bands[1].Kind).To(Equal(frame.BandYield))
			Expect(f.Bands[1].From).To(BeNumerically("~", 0.0625, 1e-12))
			Expect(f.Bands[1].To).To(BeNumerically("~", 0.5625, 1e-12))
		})

		It("drops the yield band when the plateau is empty", func() {
			f, _ := frame.Build(mustCurve("copper"), 0)
			Expect(f.Bands).To(HaveLen(1))
			Expect(f.Bands[0].Kind).To(Equal(frame.BandElastic))
		})

		It("places the four reference lines", func() {
			f, _ := frame.Build(c, 0)
			Expect(f.Guides).To(HaveLen(4))
			values := map[frame.GuideKind]float64{}
			for _, g := range f.Guides {
				values[g.Kind] = g.Value
				Expect(g.Vertical).To(Equal(g.Kind != frame.GuidePeakStress))
			}
			Expect(values[frame.GuideElasticLimit]).To(BeNumerically("~", 0.0625, 1e-12))
			Expect(values[frame.GuidePlateauEnd]).To(BeNumerically("~", 0.5625, 1e-12))
			Expect(values[frame.GuideFracture]).To(BeNumerically("~", 10, 1e-12))
			Expect(values[frame.GuidePeakStress]).To(Equal(c.Landmarks.PeakStress))
		})
	})

	Describe("specimen", func() {
		It("starts as an unstrained elastic bar", func() {
			f, _ := frame.Build(c, 0)
			s := f.Specimen
			Expect(s.Zone).To(Equal(frame.ZoneElastic))
			Expect(s.Height).To(Equal(curve.GaugeLength))
			Expect(s.Width).To(Equal(frame.SpecimenWidth))
			Expect(s.Fractured).To(BeFalse())
			Expect(s.Pieces).To(Equal([]frame.Rect{{X: 5, Y: 0, W: 10, H: 50}}))
		})

		It("turns yellow on the plateau", func() {
			for i, smp := range c.Samples {
				if smp.Strain > c.Landmarks.ElasticLimitStrain && smp.Strain < c.Landmarks.PlateauEndStrain {
					f, _ := frame.Build(c, i)
					Expect(f.Specimen.Zone).To(Equal(frame.ZoneYield))
					Expect(f.Specimen.Width).To(Equal(frame.SpecimenWidth))
					return
				}
			}
			Fail("no plateau sample found")
		})

		It("grows and narrows past the plateau", func() {
			i := c.Len() - 2
			f, _ := frame.Build(c, i)
			strain := c.Samples[i].Strain
			Expect(f.Specimen.Zone).To(Equal(frame.ZonePlastic))
			Expect(f.Specimen.Height).To(BeNumerically("~", 50*(1+strain), 1e-12))
			Expect(f.Specimen.Width).To(BeNumerically("<", frame.SpecimenWidth))
			Expect(f.Specimen.Width).To(BeNumerically("~", 10*(1-0.3*(strain-c.Landmarks.PlateauEndStrain)), 1e-12))
		})

		It("splits into two halves on the last sample", func() {
			f, _ := frame.Build(c, c.Len()-1)
			s := f.Specimen
			Expect(f.Final).To(BeTrue())
			Expect(s.Fractured).To(BeTrue())
			Expect(s.Label).To(Equal("Fracture"))
			Expect(s.Pieces).To(HaveLen(2))
			half := s.Height / 2
			Expect(s.Pieces[0]).To(Equal(frame.Rect{X: 5, Y: 0, W: s.Width, H: half}))
			Expect(s.Pieces[1]).To(Equal(frame.Rect{X: 5, Y: half + 2, W: s.Width, H: half}))
			Expect(s.LabelY).To(Equal(half))
		})

		It("never enters the yield zone without a plateau", func() {
			cu := mustCurve("copper")
			for f := range frame.Sequence(cu) {
				Expect(f.Specimen.Zone).NotTo(Equal(frame.ZoneYield))
			}
		})
	})
})

var _ = Describe("Sequence", func() {
	It("produces one frame per sample, each one sample longer", func() {
		for _, name := range material.Names() {
			c := mustCurve(name)
			frames := frame.Collect(c)
			Expect(frames).To(HaveLen(c.Len()))
			for i, f := range frames {
				Expect(f.Index).To(Equal(i))
				Expect(f.Samples).To(HaveLen(i + 1))
				if i > 0 {
					Expect(f.Current.Strain).To(BeNumerically(">", frames[i-1].Current.Strain))
				}
			}
			Expect(frames[len(frames)-1].Final).To(BeTrue())
		}
	})

	It("is deterministic", func() {
		a := frame.Collect(mustCurve("aluminum"))
		b := frame.Collect(mustCurve("aluminum"))
		Expect(a).To(Equal(b))
	})

	It("stops when the consumer breaks", func() {
		count := 0
		for range frame.Sequence(mustCurve("steel")) {
			count++
			if count == 5 {
				break
			}
		}
		Expect(count).To(Equal(5))
	})

	It("keeps every revealed stress finite", func() {
		for f := range frame.Sequence(mustCurve("copper")) {
			Expect(math.IsNaN(f.Current.Stress)).To(BeFalse())
		}
	})
})
