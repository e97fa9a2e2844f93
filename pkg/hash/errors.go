package hash

import "errors"

// ErrMarshalJSON is returned when a value cannot be encoded to JSON for
// fingerprinting.
var ErrMarshalJSON = errors.New("hash: failed to marshal value to JSON")
