// Package frame turns a generated curve into a sequence of frame descriptors.
//
// A [Frame] is a pure description of one animation step: the revealed prefix
// of the curve, shaded regions, guide lines, the numeric readout and the
// specimen sketch. Frames carry no drawing code; the viz and export packages
// render them, and tests can assert on them directly.
//
//	c, _ := curve.Generate(material.MustLookup("steel"), curve.DefaultOptions())
//	for f := range frame.Sequence(c) {
//	    display.Show(f)
//	}
package frame
