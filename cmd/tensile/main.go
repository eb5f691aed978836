package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/tensile/internal/config"
	"github.com/san-kum/tensile/internal/curve"
	"github.com/san-kum/tensile/internal/experiment"
	"github.com/san-kum/tensile/internal/export"
	"github.com/san-kum/tensile/internal/frame"
	"github.com/san-kum/tensile/internal/material"
	"github.com/san-kum/tensile/internal/tui"
	"github.com/san-kum/tensile/internal/viz"
)

// asciigraph needs at least two points per series
const minChartWidth = 2

var (
	configFile string
	verbose    bool

	plain     bool
	frameRate int
	theme     string

	frameIndex int
	asSVG      bool
	asCSV      bool
	plotWidth  int

	cfg *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "tensile",
		Short:             "animated tensile test for steel, aluminum and copper",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI("")
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [material]",
		Short: "animate one material",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTest,
	}
	runCmd.Flags().BoolVar(&plain, "plain", false, "redraw frames on a plain terminal instead of the TUI")
	runCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "frames per second (0 = no delay)")
	runCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	plotCmd := &cobra.Command{
		Use:   "plot [material]",
		Short: "plot the full stress-elongation curve",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotCurve,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")

	frameCmd := &cobra.Command{
		Use:   "frame [material]",
		Short: "render a single frame",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderFrame,
	}
	frameCmd.Flags().IntVar(&frameIndex, "index", -1, "frame index (-1 = fracture frame)")
	frameCmd.Flags().BoolVar(&asSVG, "svg", false, "write an svg document")

	curveCmd := &cobra.Command{
		Use:   "curve [material]",
		Short: "print the sampled curve",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printCurve,
	}
	curveCmd.Flags().BoolVar(&asCSV, "csv", false, "csv output")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "overlay the curves of every material",
		Args:  cobra.NoArgs,
		RunE:  compareCurves,
	}
	compareCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list material presets",
		RunE:  listMaterials,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Encode(cmd.OutOrStdout(), cfg)
		},
	}

	rootCmd.AddCommand(runCmd, plotCmd, compareCmd, frameCmd, curveCmd, materialsCmd, configCmd)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		log.WithField("path", configFile).Debug("config loaded")
	}

	flags := cmd.Flags()
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Lookup("width") != nil && plotWidth < minChartWidth {
		return fmt.Errorf("%w: chart width %d < %d", config.ErrInvalidConfig, plotWidth, minChartWidth)
	}
	return cfg.Validate()
}

// materialArg returns the material named on the command line, or the
// configured one.
func materialArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Material
}

func generate(args []string) (*curve.Curve, error) {
	p, err := material.Lookup(materialArg(args))
	if err != nil {
		return nil, err
	}
	return curve.Generate(p, cfg.CurveOptions())
}

func runTUI(name string) error {
	// keep log lines off the alt screen
	level := log.GetLevel()
	log.SetLevel(log.WarnLevel)
	defer log.SetLevel(level)
	return tui.RunApp(cfg, name)
}

func runTest(cmd *cobra.Command, args []string) error {
	if !plain {
		return runTUI(materialArg(args))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exp := experiment.New(experiment.Config{
		Material: materialArg(args),
		Options:  cfg.CurveOptions(),
		FPS:      cfg.FPS,
	})
	if err := exp.Setup(); err != nil {
		return err
	}

	stream := tui.NewStream(cmd.OutOrStdout(), viz.NewPlotter(cfg.Plot.Width, cfg.Plot.Height, cfg.PlotTheme()))
	if err := stream.Start(); err != nil {
		return err
	}
	defer stream.Stop()

	_, err := exp.Run(ctx, stream)
	return err
}

func plotCurve(cmd *cobra.Command, args []string) error {
	c, err := generate(args)
	if err != nil {
		return err
	}

	lm := c.Landmarks
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "material: %s\n", c.Material.DisplayName)
	fmt.Fprintf(out, "samples: %d\n", c.Len())
	fmt.Fprintf(out, "elastic limit: %.4f mm  end of yield: %.4f mm  fracture: %.2f mm\n",
		lm.ElasticLimitElongation, lm.PlateauEndElongation, lm.FractureElongation)
	fmt.Fprintf(out, "peak stress: %.1f MPa\n\n", lm.PeakStress)

	graph := asciigraph.Plot(c.Resample(plotWidth),
		asciigraph.Height(cfg.Plot.Height),
		asciigraph.Width(plotWidth),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(lm.PeakStress*frame.YPad),
		asciigraph.SeriesColors(seriesColor(c.Material.Color)),
		asciigraph.Caption(fmt.Sprintf("stress (MPa) vs ΔL, 0 to %.2f mm", lm.FractureElongation)),
	)
	fmt.Fprintln(out, graph)
	return nil
}

func seriesColor(name string) asciigraph.AnsiColor {
	if c, ok := asciigraph.ColorNames[name]; ok {
		return c
	}
	return asciigraph.Default
}

func compareCurves(cmd *cobra.Command, args []string) error {
	curves, err := experiment.GenerateAll(cmd.Context(), material.Names(), cfg.CurveOptions())
	if err != nil {
		return err
	}

	// series share one x scale, so no Width option here
	colors := make([]asciigraph.AnsiColor, len(curves))
	palette := cfg.PlotTheme()
	peak := 0.0
	out := cmd.OutOrStdout()
	for i, c := range curves {
		colors[i] = seriesColor(c.Material.Color)
		peak = max(peak, c.Landmarks.PeakStress)
		fmt.Fprintf(out, "%s  fracture %.2f mm  peak %.1f MPa\n",
			viz.Swatch("━━", palette.Curve(c.Material.Color), fmt.Sprintf("%-9s", c.Material.DisplayName)),
			c.Landmarks.FractureElongation, c.Landmarks.PeakStress)
	}
	fmt.Fprintln(out)

	graph := asciigraph.PlotMany(experiment.CommonGrid(curves, plotWidth),
		asciigraph.Height(cfg.Plot.Height),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(peak*frame.YPad),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption("stress (MPa) vs ΔL"),
	)
	fmt.Fprintln(out, graph)
	return nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	c, err := generate(args)
	if err != nil {
		return err
	}
	idx := frameIndex
	if idx < 0 {
		idx = c.Len() - 1
	}
	f, err := frame.Build(c, idx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asSVG {
		_, err := fmt.Fprint(out, export.FrameToSVG(f, 0, 0))
		return err
	}
	p := viz.NewPlotter(cfg.Plot.Width, cfg.Plot.Height, cfg.PlotTheme())
	fmt.Fprintln(out, p.Render(f))
	fmt.Fprintf(out, "\nframe %d/%d  %s  %s\n", f.Index+1, f.Total, f.Readout.StressText(), f.Readout.ElongationText())
	return nil
}

func printCurve(cmd *cobra.Command, args []string) error {
	c, err := generate(args)
	if err != nil {
		return err
	}

	if asCSV {
		w := csv.NewWriter(cmd.OutOrStdout())
		w.Write([]string{"index", "strain", "elongation_mm", "stress_mpa", "regime"})
		for i, s := range c.Samples {
			w.Write([]string{
				strconv.Itoa(i),
				strconv.FormatFloat(s.Strain, 'g', -1, 64),
				strconv.FormatFloat(s.Elongation, 'g', -1, 64),
				strconv.FormatFloat(s.Stress, 'g', -1, 64),
				s.Regime.String(),
			})
		}
		w.Flush()
		return w.Error()
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSTRAIN\tΔL (mm)\tSTRESS (MPa)\tREGIME")
	for i, s := range c.Samples {
		fmt.Fprintf(w, "%d\t%.5f\t%.4f\t%.2f\t%s\n", i, s.Strain, s.Elongation, s.Stress, s.Regime)
	}
	return w.Flush()
}

func listMaterials(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tE (GPa)\tYIELD (MPa)\tFRACTURE (MPa)\tMAX STRAIN\tn\tK (MPa)\tPLATEAU\tCOLOR")
	for _, p := range material.All() {
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%.2f\t%.2f\t%.0f\t%.3f\t%s\n",
			p.Name,
			p.ElasticModulus/1e9,
			p.YieldStress/1e6,
			p.FractureStress/1e6,
			p.MaxStrain,
			p.HardeningExponent,
			p.HardeningCoefficient/1e6,
			p.PlateauWidth,
			p.Color,
		)
	}
	return w.Flush()
}
