package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/tensile/internal/frame"
)

// Theme defines the color scheme for plots and the TUI
type Theme struct {
	Name   string
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Axis   lipgloss.Color

	ElasticBand lipgloss.Color
	YieldBand   lipgloss.Color

	ElasticLimit lipgloss.Color
	PlateauEnd   lipgloss.Color
	Fracture     lipgloss.Color
	Peak         lipgloss.Color

	SpecimenElastic lipgloss.Color
	SpecimenYield   lipgloss.Color
	SpecimenPlastic lipgloss.Color

	// Curves maps a material color name to the terminal color used for it.
	Curves map[string]lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:            "classic",
		Text:            lipgloss.Color("#ffffff"),
		Muted:           lipgloss.Color("#888888"),
		Accent:          lipgloss.Color("#00ccff"),
		Axis:            lipgloss.Color("#aaaaaa"),
		ElasticBand:     lipgloss.Color("#4d3300"), // dim orange
		YieldBand:       lipgloss.Color("#4d4d00"), // dim yellow
		ElasticLimit:    lipgloss.Color("#ffa500"),
		PlateauEnd:      lipgloss.Color("#ffd700"),
		Fracture:        lipgloss.Color("#a020f0"),
		Peak:            lipgloss.Color("#ff0000"),
		SpecimenElastic: lipgloss.Color("#87ceeb"), // skyblue
		SpecimenYield:   lipgloss.Color("#ffff00"),
		SpecimenPlastic: lipgloss.Color("#ff4500"), // orangered
		Curves: map[string]lipgloss.Color{
			"blue":  lipgloss.Color("#3b82f6"),
			"green": lipgloss.Color("#22c55e"),
			"red":   lipgloss.Color("#ef4444"),
		},
	}

	ThemeRetroGreen = Theme{
		Name:            "retro",
		Text:            lipgloss.Color("#00ff00"),
		Muted:           lipgloss.Color("#005500"),
		Accent:          lipgloss.Color("#88ff88"),
		Axis:            lipgloss.Color("#00aa00"),
		ElasticBand:     lipgloss.Color("#002200"),
		YieldBand:       lipgloss.Color("#113311"),
		ElasticLimit:    lipgloss.Color("#88ff88"),
		PlateauEnd:      lipgloss.Color("#ccffcc"),
		Fracture:        lipgloss.Color("#ffff00"),
		Peak:            lipgloss.Color("#ff0000"),
		SpecimenElastic: lipgloss.Color("#00cc00"),
		SpecimenYield:   lipgloss.Color("#88ff88"),
		SpecimenPlastic: lipgloss.Color("#ffff00"),
		Curves: map[string]lipgloss.Color{
			"blue":  lipgloss.Color("#00ff00"),
			"green": lipgloss.Color("#00ff00"),
			"red":   lipgloss.Color("#00ff00"),
		},
	}

	ThemeMinimal = Theme{
		Name:            "minimal",
		Text:            lipgloss.Color("#ffffff"),
		Muted:           lipgloss.Color("#888888"),
		Accent:          lipgloss.Color("#0088ff"),
		Axis:            lipgloss.Color("#cccccc"),
		ElasticBand:     lipgloss.Color("#222222"),
		YieldBand:       lipgloss.Color("#333333"),
		ElasticLimit:    lipgloss.Color("#cccccc"),
		PlateauEnd:      lipgloss.Color("#cccccc"),
		Fracture:        lipgloss.Color("#ffffff"),
		Peak:            lipgloss.Color("#ffaa00"),
		SpecimenElastic: lipgloss.Color("#cccccc"),
		SpecimenYield:   lipgloss.Color("#ffaa00"),
		SpecimenPlastic: lipgloss.Color("#ff0000"),
		Curves: map[string]lipgloss.Color{
			"blue":  lipgloss.Color("#ffffff"),
			"green": lipgloss.Color("#ffffff"),
			"red":   lipgloss.Color("#ffffff"),
		},
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) Curve(name string) lipgloss.Color {
	if c, ok := t.Curves[name]; ok {
		return c
	}
	return t.Accent
}

func (t Theme) Band(k frame.BandKind) lipgloss.Color {
	if k == frame.BandYield {
		return t.YieldBand
	}
	return t.ElasticBand
}

func (t Theme) Guide(k frame.GuideKind) lipgloss.Color {
	switch k {
	case frame.GuideElasticLimit:
		return t.ElasticLimit
	case frame.GuidePlateauEnd:
		return t.PlateauEnd
	case frame.GuideFracture:
		return t.Fracture
	default:
		return t.Peak
	}
}

func (t Theme) Zone(z frame.Zone) lipgloss.Color {
	switch z {
	case frame.ZoneElastic:
		return t.SpecimenElastic
	case frame.ZoneYield:
		return t.SpecimenYield
	default:
		return t.SpecimenPlastic
	}
}
