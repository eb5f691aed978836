// Package material holds the fixed table of tensile-test material presets.
//
// Three presets are available:
//
//   - steel: long yield plateau, moderate hardening
//   - aluminum: short plateau, low modulus
//   - copper: no plateau, high ductility
//
// The table is never mutated; [Lookup] and [All] return copies.
//
// # Example
//
//	p, err := material.Lookup("steel")
//	if err != nil {
//	    return err
//	}
//	c, _ := curve.Generate(p, curve.DefaultOptions())
package material
