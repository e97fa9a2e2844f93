// Package memoize wraps a single-argument asynchronous computation with a
// bounded, LRU-evicting memoization layer.
//
// Repeated calls whose argument fingerprints to the same key share one
// result handle, so the expensive work (a network call, a database read)
// runs once. Memory stays bounded: when the number of tracked entries
// exceeds the configured maximum, the least recently used entry is evicted.
// Entries are invalidated explicitly through a caller-supplied state
// function, and optionally rejected after the fact through a
// cache-worthiness predicate.
//
// # Usage
//
//	m, err := memoize.New(fetchProfile, memoize.Config[string, Profile]{
//	    Hasher:     hash.String,
//	    StateOf:    func(string) memoize.State { return memoize.NoState },
//	    MaxEntries: 128,
//	})
//	if err != nil {
//	    return err
//	}
//
//	profile, err := m.Do(ctx, userID) // first call invokes fetchProfile
//	profile, err = m.Do(ctx, userID)  // second call reuses the result
//
// Callers that want to hold the shared handle directly use Call, which
// returns an *async.Future; Wrap produces a drop-in replacement function
// with the original signature.
//
// # Invalidation
//
// StateOf derives a small validity token (string, number, boolean or
// absent) from each argument. A stored entry is reused only while the
// incoming state compares equal to the stored one; a mismatch replaces the
// entry's result handle with a freshly launched computation. Callers whose
// results never go stale return memoize.NoState unconditionally.
//
// # Lifecycle of an entry
//
// An entry is created on the first call with a novel fingerprint and then
// mutated in place: promoted in the recency order on every access, its
// handle replaced on invalidation. It is detached, meaning removed from
// tracking, when evicted for capacity, when its computation fails, or when the
// ShouldCache predicate rejects its result. A failed or rejected computation
// is never served to a later caller: a call that arrives before the
// asynchronous bookkeeping makes the settlement decision itself, so the
// next call for the fingerprint always starts fresh.
//
// # Reentrancy
//
// A call for a fingerprint whose entry is still in its invocation phase,
// after bookkeeping began but before the result handle exists, fails with
// ErrReentrantCall. Calls arriving after the handle is stored but before the
// computation settles simply share the pending handle.
//
// # Concurrency
//
// All methods are safe for concurrent use. One mutex guards the entry table
// and the recency order jointly; the wrapped computation, the hooks and the
// ShouldCache predicate always run outside the lock. Distinct fingerprints
// never block each other beyond that bookkeeping.
package memoize
