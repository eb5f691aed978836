package experiment

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/tensile/internal/curve"
	"github.com/san-kum/tensile/internal/frame"
	"github.com/san-kum/tensile/internal/material"
)

// Display presents frames one at a time. Each call replaces the previous frame.
type Display interface {
	Show(f frame.Frame) error
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(f frame.Frame) error

func (fn DisplayFunc) Show(f frame.Frame) error { return fn(f) }

type Config struct {
	Material string
	Options  curve.Options
	// FPS paces the frames; zero shows them back to back.
	FPS int
}

type Result struct {
	Curve   *curve.Curve
	Frames  int
	Elapsed time.Duration
}

// Experiment is one tensile run: a curve generated up front, then shown
// frame by frame.
type Experiment struct {
	cfg    Config
	preset material.Preset
	curve  *curve.Curve
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup resolves the material and generates the curve.
func (e *Experiment) Setup() error {
	p, err := material.Lookup(e.cfg.Material)
	if err != nil {
		return err
	}
	c, err := curve.Generate(p, e.cfg.Options)
	if err != nil {
		return fmt.Errorf("generate %s: %w", p.Name, err)
	}
	e.preset, e.curve = p, c

	lm := c.Landmarks
	log.WithFields(log.Fields{
		"material":        p.Name,
		"samples":         c.Len(),
		"elastic_limit":   lm.ElasticLimitElongation,
		"plateau_end":     lm.PlateauEndElongation,
		"fracture":        lm.FractureElongation,
		"peak_stress_mpa": lm.PeakStress,
	}).Debug("curve generated")
	return nil
}

// Curve returns the generated curve, or nil before Setup.
func (e *Experiment) Curve() *curve.Curve {
	return e.curve
}

// Run shows every frame on d in strain order. Cancelling ctx stops the run
// between frames.
func (e *Experiment) Run(ctx context.Context, d Display) (*Result, error) {
	if e.curve == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	var tick <-chan time.Time
	if e.cfg.FPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(e.cfg.FPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	start := time.Now()
	shown := 0
	for f := range frame.Sequence(e.curve) {
		if err := ctx.Err(); err != nil {
			return e.result(shown, start), fmt.Errorf("run aborted at frame %d: %w", shown, err)
		}
		if err := d.Show(f); err != nil {
			return e.result(shown, start), fmt.Errorf("show frame %d: %w", f.Index, err)
		}
		shown++

		if tick != nil && !f.Final {
			select {
			case <-ctx.Done():
				return e.result(shown, start), fmt.Errorf("run aborted at frame %d: %w", shown, ctx.Err())
			case <-tick:
			}
		}
	}

	res := e.result(shown, start)
	log.WithFields(log.Fields{
		"material": e.preset.Name,
		"frames":   res.Frames,
		"elapsed":  res.Elapsed,
	}).Info("run complete")
	return res, nil
}

func (e *Experiment) result(frames int, start time.Time) *Result {
	return &Result{Curve: e.curve, Frames: frames, Elapsed: time.Since(start)}
}
