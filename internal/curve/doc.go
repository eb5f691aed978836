// Package curve generates the synthetic engineering stress-strain response
// shown by the tensile-test animation.
//
// The response is phenomenological, not a solver. It is built from four regimes:
//
//   - [RegimeElastic]: Hooke's law up to the yield stress
//   - [RegimeYield]: a flat plateau with a small sinusoidal ripple
//   - [RegimeHardening]: power-law strain hardening
//   - [RegimeNecking]: linear softening after the peak stress
//
// # Example
//
//	c, err := curve.Generate(material.MustLookup("steel"), curve.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.Landmarks.PeakStress)
package curve
