package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/tensile/internal/curve"
	"github.com/san-kum/tensile/internal/material"
	"github.com/san-kum/tensile/internal/viz"
)

const (
	DefaultMaterial = "steel"
	DefaultFPS      = 20
	DefaultTheme    = "classic"
	MaxFPS          = 120
)

// ErrInvalidConfig indicates a configuration value outside its valid range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Material string      `yaml:"material"`
	FPS      int         `yaml:"fps"`
	Theme    string      `yaml:"theme"`
	Curve    CurveConfig `yaml:"curve"`
	Plot     PlotConfig  `yaml:"plot"`
}

type CurveConfig struct {
	FineSamples     int     `yaml:"fine_samples"`
	CoarseSamples   int     `yaml:"coarse_samples"`
	RippleAmplitude float64 `yaml:"ripple_amplitude"`
	SofteningDrop   float64 `yaml:"softening_drop"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	opts := curve.DefaultOptions()
	return &Config{
		Material: DefaultMaterial,
		FPS:      DefaultFPS,
		Theme:    DefaultTheme,
		Curve: CurveConfig{
			FineSamples:     opts.FineSamples,
			CoarseSamples:   opts.CoarseSamples,
			RippleAmplitude: opts.RippleAmplitude,
			SofteningDrop:   opts.SofteningDrop,
		},
		Plot: PlotConfig{
			Width:  viz.DefaultPlotWidth,
			Height: viz.DefaultPlotHeight,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func (c *Config) Validate() error {
	if _, err := material.Lookup(c.Material); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.FPS < 0 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d outside [0, %d]", ErrInvalidConfig, c.FPS, MaxFPS)
	}
	if c.Plot.Width < 20 || c.Plot.Height < 8 {
		return fmt.Errorf("%w: plot %dx%d smaller than 20x8", ErrInvalidConfig, c.Plot.Width, c.Plot.Height)
	}
	if err := c.CurveOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) CurveOptions() curve.Options {
	return curve.Options{
		FineSamples:     c.Curve.FineSamples,
		CoarseSamples:   c.Curve.CoarseSamples,
		RippleAmplitude: c.Curve.RippleAmplitude,
		SofteningDrop:   c.Curve.SofteningDrop,
	}
}

func (c *Config) PlotTheme() viz.Theme {
	return viz.GetTheme(c.Theme)
}
