// Package viz draws tensile-test frames for the terminal.
//
// The package renders [frame.Frame] descriptors as text:
//
//   - [Canvas]: braille pixel canvas with per-cell colors
//   - [Plotter]: curve panel (bands, dashed guides, readout, legend) and specimen panel
//   - Theme selection with 3 built-in color schemes
//
// Rendering is pure: the same frame, plotter size and theme always produce
// the same string.
package viz
