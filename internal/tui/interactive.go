package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tensile/internal/config"
	"github.com/san-kum/tensile/internal/curve"
	"github.com/san-kum/tensile/internal/frame"
	"github.com/san-kum/tensile/internal/material"
	"github.com/san-kum/tensile/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const (
	historyLen    = 40
	historyHeight = 8
	historyWidth  = 32
	barWidth      = 32
	fallbackTick  = 16 * time.Millisecond

	springFrequency = 6.0
	springDamping   = 1.0
)

type state int

const (
	stateMenu state = iota
	stateRun
)

// App is the interactive tensile test: pick a material, then watch the
// curve and specimen evolve frame by frame.
type App struct {
	state  state
	cursor int
	items  []material.Preset

	opts    curve.Options
	fps     int
	plotter *viz.Plotter

	curve  *curve.Curve
	frame  frame.Frame
	paused bool
	done   bool
	gen    int
	err    error

	// progress bar eased toward the frame share
	spring harmonica.Spring
	barPos float64
	barVel float64

	width  int
	height int
}

func NewApp(cfg *config.Config) *App {
	a := &App{
		state:   stateMenu,
		items:   material.All(),
		opts:    cfg.CurveOptions(),
		fps:     cfg.FPS,
		plotter: viz.NewPlotter(cfg.Plot.Width, cfg.Plot.Height, cfg.PlotTheme()),
		width:   80,
		height:  24,
	}
	a.spring = harmonica.NewSpring(harmonica.FPS(a.ticksPerSecond()), springFrequency, springDamping)
	if p, err := material.Lookup(cfg.Material); err == nil {
		for i, it := range a.items {
			if it.Name == p.Name {
				a.cursor = i
			}
		}
	}
	return a
}

type tickMsg struct {
	gen int
}

func (a *App) interval() time.Duration {
	if a.fps <= 0 {
		return fallbackTick
	}
	return time.Second / time.Duration(a.fps)
}

func (a *App) ticksPerSecond() int {
	return int(time.Second / a.interval())
}

func (a *App) tick() tea.Cmd {
	gen := a.gen
	return tea.Tick(a.interval(), func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (a *App) Init() tea.Cmd {
	if a.state == stateRun {
		return a.tick()
	}
	return nil
}

// Start skips the menu and begins animating name.
func (a *App) Start(name string) error {
	p, err := material.Lookup(name)
	if err != nil {
		return err
	}
	for i, it := range a.items {
		if it.Name == p.Name {
			a.cursor = i
		}
	}
	return a.start()
}

func (a *App) start() error {
	c, err := curve.Generate(a.items[a.cursor], a.opts)
	if err != nil {
		return err
	}
	f, err := frame.Build(c, 0)
	if err != nil {
		return err
	}
	a.curve, a.frame = c, f
	a.state = stateRun
	a.paused = false
	a.done = false
	a.barPos, a.barVel = 0, 0
	a.gen++
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tickMsg:
		if a.state != stateRun || msg.gen != a.gen || a.done {
			return a, nil
		}
		if !a.paused {
			a.advance()
		}
		if a.done {
			a.barPos, a.barVel = 1, 0
			return a, nil
		}
		a.barPos, a.barVel = a.spring.Update(a.barPos, a.barVel, a.progress())
		return a, a.tick()
	}
	return a, nil
}

func (a *App) advance() {
	next := a.frame.Index + 1
	f, err := frame.Build(a.curve, next)
	if err != nil {
		a.err = err
		a.done = true
		return
	}
	a.frame = f
	a.done = f.Final
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	case stateRun:
		return a.runKey(msg)
	}
	return a, nil
}

func (a *App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.items)-1 {
			a.cursor++
		}
	case "t":
		a.cycleTheme()
	case "enter", " ":
		if err := a.start(); err != nil {
			a.err = err
			return a, nil
		}
		return a, tea.Batch(tea.ClearScreen, a.tick())
	}
	return a, nil
}

func (a *App) runKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "m":
		a.state = stateMenu
		a.gen++
		a.curve = nil
		return a, tea.ClearScreen
	case " ", "p":
		if !a.done {
			a.paused = !a.paused
		}
	case "r":
		if err := a.start(); err != nil {
			a.err = err
			return a, nil
		}
		return a, tea.Batch(tea.ClearScreen, a.tick())
	case "t":
		a.cycleTheme()
	}
	return a, nil
}

func (a *App) cycleTheme() {
	a.plotter.Theme = viz.NextTheme(a.plotter.Theme.Name)
}

func (a *App) View() string {
	switch a.state {
	case stateRun:
		return a.viewRun()
	default:
		return a.viewMenu()
	}
}

func (a *App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("t e n s i l e") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	for i, p := range a.items {
		desc := fmt.Sprintf("E %.0f GPa  σy %.0f MPa", p.ElasticModulus/1e9, p.YieldStress/1e6)
		if i == a.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", p.DisplayName)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", p.DisplayName)) + dimmer.Render(desc) + "\n")
		}
	}

	if a.err != nil {
		b.WriteString("\n      " + red.Render(a.err.Error()) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(dim.Render("      theme "+a.plotter.Theme.Name) + "\n\n")
	b.WriteString(dim.Render("      ↑↓ select   enter start   t theme   q quit") + "\n")
	return b.String()
}

func (a *App) viewRun() string {
	f := a.frame
	var b strings.Builder

	status := viz.StatusRunning.Render("● running")
	switch {
	case a.done:
		status = viz.StatusFractured.Render("✕ fractured")
	case a.paused:
		status = viz.StatusPaused.Render("○ paused")
	}
	b.WriteString(fmt.Sprintf("\n  %s  %s\n\n", status, dim.Render(fmt.Sprintf("frame %d/%d", f.Index+1, f.Total))))

	body := lipgloss.JoinHorizontal(lipgloss.Top, a.plotter.Render(f), "   ", a.sidebar())
	b.WriteString(body)
	b.WriteString("\n\n")
	b.WriteString(viz.KeyHint.Render("  space pause  r restart  t theme  esc menu  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (a *App) sidebar() string {
	f := a.frame
	var b strings.Builder

	b.WriteString(viz.MetricLabel.Render("material") + viz.MetricValue.Render(f.Material) + "\n")
	b.WriteString(viz.MetricLabel.Render("regime") + viz.MetricValue.Render(f.Current.Regime.String()) + "\n")
	b.WriteString(viz.MetricLabel.Render("strain") + viz.MetricValue.Render(fmt.Sprintf("%.5f", f.Current.Strain)) + "\n")
	b.WriteString(viz.MetricLabel.Render("zone") + viz.MetricValue.Render(f.Specimen.Zone.Label()) + "\n\n")

	b.WriteString(viz.ProgressBar(a.barPos, barWidth) + "\n\n")

	if h := stressHistory(f.Samples, historyLen); len(h) >= 2 {
		b.WriteString(asciigraph.Plot(h,
			asciigraph.Height(historyHeight),
			asciigraph.Width(historyWidth),
			asciigraph.Precision(0),
			asciigraph.Caption("stress history (MPa)")))
	} else {
		b.WriteString(dim.Render("stress history (MPa)"))
	}
	return b.String()
}

func (a *App) progress() float64 {
	return float64(a.frame.Index+1) / float64(a.frame.Total)
}

// stressHistory returns the stresses of the last n revealed samples.
func stressHistory(samples []curve.Sample, n int) []float64 {
	if len(samples) > n {
		samples = samples[len(samples)-n:]
	}
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Stress
	}
	return out
}

// RunApp runs the interactive program. A non-empty name skips the menu.
func RunApp(cfg *config.Config, name string) error {
	app := NewApp(cfg)
	if name != "" {
		if err := app.Start(name); err != nil {
			return err
		}
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return app.err
}
