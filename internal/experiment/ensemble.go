package experiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/tensile/internal/curve"
	"github.com/san-kum/tensile/internal/material"
)

// GenerateAll builds the curve of every named material concurrently. Results
// keep the order of names.
func GenerateAll(ctx context.Context, names []string, opts curve.Options) ([]*curve.Curve, error) {
	curves := make([]*curve.Curve, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			p, err := material.Lookup(name)
			if err != nil {
				errs[idx] = err
				return
			}
			curves[idx], errs[idx] = curve.Generate(p, opts)
		}(i, name)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
	}
	return curves, nil
}

// CommonGrid resamples curves onto one elongation grid of n points spanning
// the largest fracture elongation. Each series stops at its own fracture.
func CommonGrid(curves []*curve.Curve, n int) [][]float64 {
	widest := 0.0
	for _, c := range curves {
		widest = max(widest, c.Landmarks.FractureElongation)
	}
	out := make([][]float64, len(curves))
	if widest <= 0 || n < 2 {
		return out
	}
	for i, c := range curves {
		share := c.Landmarks.FractureElongation / widest
		k := max(int(share*float64(n-1)+0.5)+1, 2)
		out[i] = c.Resample(k)
	}
	return out
}
