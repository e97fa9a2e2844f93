// Package hash provides deterministic fingerprint helpers for cache keys.
//
// All helpers digest their input with xxhash64 and return a short hex
// string. xxhash is a fast non-cryptographic hash, which is the right
// trade-off for in-process cache keys where throughput matters and
// adversarial collisions do not.
//
// # Usage
//
// Fingerprint simple values directly:
//
//	key := hash.String(userID)
//	key := hash.Bytes(payload)
//
// For structured arguments, JSON produces a digest of the canonical JSON
// encoding:
//
//	key, err := hash.JSON(request)
//
// JSONOf builds a ready-to-use hasher function for a concrete argument
// type, e.g. for memoization configs:
//
//	cfg := memoize.Config[SearchQuery, []Result]{
//	    Hasher: hash.JSONOf[SearchQuery](),
//	    ...
//	}
package hash
