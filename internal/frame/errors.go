package frame

import "errors"

// ErrIndexOutOfRange indicates a frame index outside the curve's samples.
var ErrIndexOutOfRange = errors.New("frame: index out of range")
