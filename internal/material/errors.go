package material

import "errors"

// ErrUnknownMaterial indicates a name outside the preset table.
var ErrUnknownMaterial = errors.New("material: unknown preset")
