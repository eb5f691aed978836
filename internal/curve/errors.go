package curve

import "errors"

var (
	// ErrInvalidOptions indicates sampling or shape options outside their valid range.
	ErrInvalidOptions = errors.New("curve: invalid options")

	// ErrDegeneratePreset indicates preset constants that cannot produce a curve.
	ErrDegeneratePreset = errors.New("curve: degenerate preset")
)
