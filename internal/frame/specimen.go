package frame

import "github.com/san-kum/tensile/internal/curve"

// Specimen sketch geometry, in sketch units (gauge length = 50).
const (
	SpecimenX          = 5.0
	SpecimenWidth      = 10.0
	NeckingRate        = 0.3
	FractureGap        = 2.0
	SpecimenAxisWidth  = 25.0
	SpecimenAxisHeight = 1.6 * curve.GaugeLength
)

type Zone int

const (
	ZoneElastic Zone = iota
	ZoneYield
	ZonePlastic
)

func (z Zone) Label() string {
	switch z {
	case ZoneElastic:
		return "Elastic zone"
	case ZoneYield:
		return "Yield"
	default:
		return "Plastic zone"
	}
}

// Zones lists the specimen legend entries in display order.
func Zones() []Zone {
	return []Zone{ZoneElastic, ZoneYield, ZonePlastic}
}

type Rect struct {
	X, Y, W, H float64
}

// Specimen is the schematic bar drawn next to the curve. Pieces holds one
// rectangle while intact and two once fractured.
type Specimen struct {
	Zone      Zone
	Height    float64
	Width     float64
	Pieces    []Rect
	Fractured bool
	Label     string
	LabelX    float64
	LabelY    float64
}

func buildSpecimen(lm curve.Landmarks, strain float64, final bool) Specimen {
	height := curve.GaugeLength * (1 + strain)

	zone := ZonePlastic
	switch {
	case strain < lm.ElasticLimitStrain:
		zone = ZoneElastic
	case strain < lm.PlateauEndStrain:
		zone = ZoneYield
	}

	width := SpecimenWidth
	if strain >= lm.PlateauEndStrain {
		width = SpecimenWidth * (1 - NeckingRate*(strain-lm.PlateauEndStrain))
	}

	s := Specimen{Zone: zone, Height: height, Width: width}
	if !final {
		s.Pieces = []Rect{{X: SpecimenX, Y: 0, W: width, H: height}}
		return s
	}

	half := height / 2
	s.Fractured = true
	s.Pieces = []Rect{
		{X: SpecimenX, Y: 0, W: width, H: half},
		{X: SpecimenX, Y: half + FractureGap, W: width, H: half},
	}
	s.Label = "Fracture"
	s.LabelX, s.LabelY = 1, half
	return s
}
