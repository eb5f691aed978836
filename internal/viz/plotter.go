package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/tensile/internal/frame"
)

const (
	DefaultPlotWidth     = 60
	DefaultPlotHeight    = 18
	DefaultSpecimenWidth = 12

	yLabelWidth = 7
	dashOn      = 2
	dashOff     = 2
)

// Plotter draws frame descriptors as colored braille text. Render is a pure
// function of the frame and the plotter's fields.
type Plotter struct {
	Width         int // plot area, in cells
	Height        int
	SpecimenWidth int
	Theme         Theme
}

func NewPlotter(width, height int, theme Theme) *Plotter {
	if width <= 0 {
		width = DefaultPlotWidth
	}
	if height <= 0 {
		height = DefaultPlotHeight
	}
	return &Plotter{
		Width:         width,
		Height:        height,
		SpecimenWidth: DefaultSpecimenWidth,
		Theme:         theme,
	}
}

// Render draws the curve panel and the specimen panel side by side.
func (p *Plotter) Render(f frame.Frame) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, p.Plot(f), "   ", p.Specimen(f))
	return TitleStyle.Render(f.Title) + "\n\n" + body
}

// Plot draws the stress-elongation panel.
func (p *Plotter) Plot(f frame.Frame) string {
	c := NewCanvas(p.Width, p.Height)
	sw, sh := c.SubWidth(), c.SubHeight()
	t := p.Theme

	for _, b := range f.Bands {
		c.ShadeColumns(scale(b.From, f.XMax, sw)/2, scale(b.To, f.XMax, sw)/2, t.Band(b.Kind))
	}

	for _, g := range f.Guides {
		if g.Vertical {
			x := scale(g.Value, f.XMax, sw)
			c.DrawDashed(x, 0, x, sh-1, dashOn, dashOff, t.Guide(g.Kind))
		} else {
			y := flip(scale(g.Value, f.YMax, sh), sh)
			c.DrawDashed(0, y, sw-1, y, dashOn, dashOff, t.Guide(g.Kind))
		}
	}

	color := t.Curve(f.Color)
	prevX, prevY := -1, -1
	for _, s := range f.Samples {
		x := scale(s.Elongation, f.XMax, sw)
		y := flip(scale(s.Stress, f.YMax, sh), sh)
		if prevX < 0 {
			c.SetColor(x, y, color)
		} else {
			c.DrawLine(prevX, prevY, x, y, color)
		}
		prevX, prevY = x, y
	}

	// readout sits near the left edge,
	// at 110% and 100% of the peak stress
	peak := f.YMax / frame.YPad
	col := scale(0.05*f.XMax/frame.XPad, f.XMax, sw) / 2
	c.Text(col, flip(scale(1.1*peak, f.YMax, sh), sh)/4, " "+f.Readout.StressText()+" ", t.Text)
	c.Text(col, flip(scale(peak, f.YMax, sh), sh)/4, " "+f.Readout.ElongationText()+" ", t.Text)

	var b strings.Builder
	axis := lipgloss.NewStyle().Foreground(t.Axis)
	for row, line := range c.Lines() {
		b.WriteString(axis.Render(p.yLabel(row, f.YMax)+"│") + line + "\n")
	}
	b.WriteString(axis.Render(strings.Repeat(" ", yLabelWidth)+"└"+strings.Repeat("─", p.Width)) + "\n")

	lo, hi := "0", fmt.Sprintf("%.1f", f.XMax)
	gap := max(p.Width-len(lo)-len(hi), 1)
	b.WriteString(axis.Render(strings.Repeat(" ", yLabelWidth+1)+lo+strings.Repeat(" ", gap)+hi) + "\n")
	b.WriteString(strings.Repeat(" ", yLabelWidth+1) + Subtle.Render(frame.XLabel+"   y: "+frame.YLabel) + "\n")
	b.WriteString(p.legend(f))
	return b.String()
}

func (p *Plotter) yLabel(row int, yMax float64) string {
	var v float64
	switch row {
	case 0:
		v = yMax
	case p.Height / 2:
		v = yMax / 2
	case p.Height - 1:
		v = 0
	default:
		return strings.Repeat(" ", yLabelWidth)
	}
	return fmt.Sprintf("%*.0f ", yLabelWidth-1, v)
}

func (p *Plotter) legend(f frame.Frame) string {
	t := p.Theme
	items := []string{Swatch("━", t.Curve(f.Color), f.Material)}
	for _, b := range f.Bands {
		items = append(items, Swatch("█", t.Band(b.Kind), b.Label))
	}
	for _, g := range f.Guides {
		marker := "┆"
		if !g.Vertical {
			marker = "┄"
		}
		items = append(items, Swatch(marker, t.Guide(g.Kind), g.Label))
	}
	return strings.Repeat(" ", yLabelWidth+1) + strings.Join(items, "  ")
}

// Specimen draws the schematic bar.
func (p *Plotter) Specimen(f frame.Frame) string {
	c := NewCanvas(p.SpecimenWidth, p.Height)
	sw, sh := c.SubWidth(), c.SubHeight()
	s := f.Specimen
	color := p.Theme.Zone(s.Zone)

	for _, r := range s.Pieces {
		x0 := scale(r.X, frame.SpecimenAxisWidth, sw)
		x1 := scale(r.X+r.W, frame.SpecimenAxisWidth, sw)
		y0 := flip(scale(r.Y, frame.SpecimenAxisHeight, sh), sh)
		y1 := flip(scale(r.Y+r.H, frame.SpecimenAxisHeight, sh), sh)
		c.FillRect(x0, y1, x1, y0, color)
	}
	if s.Label != "" {
		col := scale(s.LabelX, frame.SpecimenAxisWidth, sw) / 2
		row := flip(scale(s.LabelY, frame.SpecimenAxisHeight, sh), sh) / 4
		c.Text(col, row, s.Label, p.Theme.Text)
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Specimen") + "\n")
	for _, line := range c.Lines() {
		b.WriteString(line + "\n")
	}
	for _, z := range frame.Zones() {
		b.WriteString(Swatch("█", p.Theme.Zone(z), z.Label()) + "\n")
	}
	return b.String()
}

// scale maps v in [0, max] onto sub-pixel index [0, n-1], clamped.
func scale(v, max float64, n int) int {
	if max <= 0 || n <= 1 {
		return 0
	}
	i := int(math.Round(v / max * float64(n-1)))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// flip turns a bottom-up index into a top-down one.
func flip(i, n int) int {
	return n - 1 - i
}
