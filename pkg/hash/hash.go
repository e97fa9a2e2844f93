package hash

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// String returns the fingerprint of s: a 16-character hex digest of its
// xxhash64 sum. Equal strings always produce equal fingerprints.
func String(s string) string {
	return format(xxhash.Sum64String(s))
}

// Bytes returns the fingerprint of b. Equal byte slices always produce
// equal fingerprints.
func Bytes(b []byte) string {
	return format(xxhash.Sum64(b))
}

// JSON marshals v to JSON and fingerprints the encoding. Two values with
// identical JSON representations share a fingerprint, which makes JSON a
// convenient digest for structs and slices used as cache arguments.
//
// Map iteration order is not a concern: encoding/json sorts map keys, so
// the encoding is deterministic for equal maps.
func JSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarshalJSON, err)
	}
	return Bytes(data), nil
}

// JSONOf returns a deterministic hasher for values of type A, suitable as a
// fingerprint function for memoization. Values that cannot be marshaled to
// JSON fall back to their Go-syntax representation, keeping the hasher total
// and pure at the cost of weaker guarantees for such types.
func JSONOf[A any]() func(A) string {
	return func(arg A) string {
		fp, err := JSON(arg)
		if err != nil {
			return String(fmt.Sprintf("%#v", arg))
		}
		return fp
	}
}

func format(sum uint64) string {
	return strconv.FormatUint(sum, 16)
}
