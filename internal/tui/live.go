package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/tensile/internal/experiment"
	"github.com/san-kum/tensile/internal/frame"
	"github.com/san-kum/tensile/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

var _ experiment.Display = (*Stream)(nil)

// Stream redraws each frame in place on a plain terminal.
type Stream struct {
	w       io.Writer
	plotter *viz.Plotter
	// Clear emits the clear-screen sequence before every frame.
	Clear bool
}

func NewStream(w io.Writer, plotter *viz.Plotter) *Stream {
	return &Stream{w: w, plotter: plotter, Clear: true}
}

func (s *Stream) Show(f frame.Frame) error {
	var b strings.Builder
	if s.Clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(s.plotter.Render(f))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  frame %d/%d  %s  %s\n", f.Index+1, f.Total, f.Readout.StressText(), f.Readout.ElongationText()))
	if f.Final {
		b.WriteString("  " + viz.StatusFractured.Render("specimen fractured") + "\n")
	}
	_, err := io.WriteString(s.w, b.String())
	return err
}

func (s *Stream) Start() error {
	_, err := io.WriteString(s.w, hideCursor)
	return err
}

func (s *Stream) Stop() error {
	_, err := io.WriteString(s.w, showCursor)
	return err
}
