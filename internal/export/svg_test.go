package export

import (
	"strings"
	"testing"

	"github.com/san-kum/tensile/internal/curve"
	"github.com/san-kum/tensile/internal/frame"
	"github.com/san-kum/tensile/internal/material"
)

func steelFrames(t *testing.T) []frame.Frame {
	t.Helper()
	c, err := curve.Generate(material.MustLookup("steel"), curve.DefaultOptions())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return frame.Collect(c)
}

func TestFrameToSVG(t *testing.T) {
	fs := steelFrames(t)
	f := fs[10]
	svg := FrameToSVG(f, 0, 0)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete SVG document")
	}
	if !strings.Contains(svg, `width="1120" height="400"`) {
		t.Error("default size not applied")
	}
	if got := strings.Count(svg, " L"); got != len(f.Samples)-1 {
		t.Errorf("path has %d segments, want %d", got, len(f.Samples)-1)
	}
	if got := strings.Count(svg, `stroke-dasharray="6,4"`); got != 4 {
		t.Errorf("expected 4 guides, got %d", got)
	}
	if got := strings.Count(svg, `fill-opacity="0.2"`); got != 2 {
		t.Errorf("expected 2 bands, got %d", got)
	}
	for _, want := range []string{f.Title, f.Readout.StressText(), "Specimen", `stroke="#0000ff"`} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestFrameToSVG_Specimen(t *testing.T) {
	fs := steelFrames(t)

	intact := FrameToSVG(fs[0], 800, 300)
	if got := strings.Count(intact, `fill="#87ceeb" stroke="#000000"`); got != 1 {
		t.Errorf("intact specimen should be one elastic bar, got %d", got)
	}
	if strings.Contains(intact, `font-size="14">Fracture</text>`) {
		t.Error("intact specimen labelled as fractured")
	}

	final := FrameToSVG(fs[len(fs)-1], 800, 300)
	if got := strings.Count(final, `fill="#ff4500" stroke="#000000"`); got != 2 {
		t.Errorf("fractured specimen should have two halves, got %d", got)
	}
	if !strings.Contains(final, `font-size="14">Fracture</text>`) {
		t.Error("fracture label missing")
	}
}

func TestFrameToSVG_Deterministic(t *testing.T) {
	a := steelFrames(t)
	b := steelFrames(t)
	for i := range a {
		if FrameToSVG(a[i], 640, 240) != FrameToSVG(b[i], 640, 240) {
			t.Fatalf("frame %d differs", i)
		}
	}
}
