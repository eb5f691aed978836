package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/tensile/internal/frame"
)

const (
	DefaultSVGWidth  = 1120
	DefaultSVGHeight = 400

	margin = 48.0
)

// Figure colors, named after the matplotlib colors of the classroom figure.
var (
	curveColors = map[string]string{
		"blue":  "#0000ff",
		"green": "#008000",
		"red":   "#ff0000",
	}
	bandColors = map[frame.BandKind]string{
		frame.BandElastic: "#ffa500",
		frame.BandYield:   "#ffff00",
	}
	guideColors = map[frame.GuideKind]string{
		frame.GuideElasticLimit: "#ffa500",
		frame.GuidePlateauEnd:   "#ffd700",
		frame.GuideFracture:     "#800080",
		frame.GuidePeakStress:   "#ff0000",
	}
	zoneColors = map[frame.Zone]string{
		frame.ZoneElastic: "#87ceeb",
		frame.ZoneYield:   "#ffff00",
		frame.ZonePlastic: "#ff4500",
	}
)

// box maps data coordinates onto a pixel rectangle with y pointing up.
type box struct {
	x, y, w, h float64
	xMax, yMax float64
}

func (b box) px(v float64) float64 { return b.x + v/b.xMax*b.w }
func (b box) py(v float64) float64 { return b.y + b.h - v/b.yMax*b.h }

// FrameToSVG draws a frame as a two-panel SVG document: the curve on the
// left three quarters, the specimen on the right quarter.
func FrameToSVG(f frame.Frame, width, height int) string {
	if width <= 0 {
		width = DefaultSVGWidth
	}
	if height <= 0 {
		height = DefaultSVGHeight
	}
	w, h := float64(width), float64(height)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	plot := box{x: margin, y: margin, w: w*0.75 - 2*margin, h: h - 2*margin, xMax: f.XMax, yMax: f.YMax}
	writePlot(&sb, f, plot)

	spec := box{x: w*0.75 + margin/2, y: margin, w: w*0.25 - margin, h: h - 2*margin,
		xMax: frame.SpecimenAxisWidth, yMax: frame.SpecimenAxisHeight}
	writeSpecimen(&sb, f, spec)

	sb.WriteString("</svg>")
	return sb.String()
}

func writePlot(sb *strings.Builder, f frame.Frame, b box) {
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-size="14">%s</text>
`, b.x+b.w/2, b.y-16, html.EscapeString(f.Title)))

	for _, band := range f.Bands {
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="0.2"/>
`, b.px(band.From), b.y, b.px(band.To)-b.px(band.From), b.h, bandColors[band.Kind]))
	}

	for _, g := range f.Guides {
		x1, y1, x2, y2 := b.px(g.Value), b.y, b.px(g.Value), b.y+b.h
		if !g.Vertical {
			x1, y1, x2, y2 = b.x, b.py(g.Value), b.x+b.w, b.py(g.Value)
		}
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="6,4"/>
`, x1, y1, x2, y2, guideColors[g.Kind]))
	}

	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#000000"/>
`, b.x, b.y, b.w, b.h))

	if len(f.Samples) > 0 {
		color, ok := curveColors[f.Color]
		if !ok {
			color = "#000000"
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i, s := range f.Samples {
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", b.px(s.Elongation), b.py(s.Stress)))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", b.px(s.Elongation), b.py(s.Stress)))
			}
		}
		sb.WriteString(`"/>
`)
	}

	peak := f.YMax / frame.YPad
	tx := b.px(0.05 * f.XMax / frame.XPad)
	for i, text := range []string{f.Readout.StressText(), f.Readout.ElongationText()} {
		y := b.py(peak * (1.1 - 0.1*float64(i)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="11" stroke="none">%s</text>
`, tx, y, html.EscapeString(text)))
	}

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-size="12">%s</text>
`, b.x+b.w/2, b.y+b.h+32, html.EscapeString(frame.XLabel)))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-size="12" transform="rotate(-90 %.1f %.1f)">%s</text>
`, b.x-30, b.y+b.h/2, b.x-30, b.y+b.h/2, html.EscapeString(frame.YLabel)))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="10">0</text>
<text x="%.1f" y="%.1f" font-size="10" text-anchor="end">%.1f</text>
<text x="%.1f" y="%.1f" font-size="10" text-anchor="end">%.0f</text>
`, b.x, b.y+b.h+14, b.x+b.w, b.y+b.h+14, f.XMax, b.x-4, b.y+10, f.YMax))

	y := b.y + b.h - 8
	for i := len(f.Guides) - 1; i >= 0; i-- {
		g := f.Guides[i]
		writeLegendEntry(sb, b.x+b.w-120, y, guideColors[g.Kind], g.Label, true)
		y -= 14
	}
	for i := len(f.Bands) - 1; i >= 0; i-- {
		band := f.Bands[i]
		writeLegendEntry(sb, b.x+b.w-120, y, bandColors[band.Kind], band.Label, false)
		y -= 14
	}
}

func writeSpecimen(sb *strings.Builder, f frame.Frame, b box) {
	s := f.Specimen
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-size="14">Specimen</text>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#000000"/>
`, b.x+b.w/2, b.y-16, b.x, b.y, b.w, b.h))

	for _, r := range s.Pieces {
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#000000"/>
`, b.px(r.X), b.py(r.Y+r.H), b.px(r.X+r.W)-b.px(r.X), b.py(r.Y)-b.py(r.Y+r.H), zoneColors[s.Zone]))
	}
	if s.Label != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="14">%s</text>
`, b.px(s.LabelX), b.py(s.LabelY), html.EscapeString(s.Label)))
	}

	y := b.y + 14
	for _, z := range frame.Zones() {
		writeLegendEntry(sb, b.x+4, y, zoneColors[z], z.Label(), false)
		y += 14
	}
}

func writeLegendEntry(sb *strings.Builder, x, y float64, color, label string, dashed bool) {
	if dashed {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-dasharray="4,2"/>
`, x, y-4, x+16, y-4, color))
	} else {
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="16" height="8" fill="%s" fill-opacity="0.6"/>
`, x, y-8, color))
	}
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="9">%s</text>
`, x+20, y, html.EscapeString(label)))
}
