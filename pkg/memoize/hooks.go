package memoize

// Hooks holds optional lifecycle callbacks for cache events. Any field may
// be nil. Hooks run outside the memoizer's lock, so they may call back into
// the memoizer for other fingerprints; a hook that calls back for the
// fingerprint currently being invoked receives ErrReentrantCall.
//
// A panicking hook is recovered and ignored; instrumentation must never
// take down the call path.
type Hooks[A any] struct {
	// OnHit runs after a call reused an existing result handle.
	OnHit func(fingerprint string, arg A)

	// OnMiss runs during the invocation phase of a call that created a new
	// entry, before the computation is launched.
	OnMiss func(fingerprint string, arg A)

	// OnInvalidate runs during the invocation phase of a call whose state
	// no longer matched the stored entry, before the recomputation is
	// launched.
	OnInvalidate func(fingerprint string, arg A)

	// OnEvict runs after an entry was evicted for capacity.
	OnEvict func(fingerprint string)

	// OnDiscard runs after an entry was detached on settlement: err is the
	// computation failure, or nil when the cache-worthiness predicate
	// rejected the result.
	OnDiscard func(fingerprint string, err error)
}

func (h *Hooks[A]) hit(fingerprint string, arg A) {
	if h == nil || h.OnHit == nil {
		return
	}
	defer func() { _ = recover() }()
	h.OnHit(fingerprint, arg)
}

func (h *Hooks[A]) miss(fingerprint string, arg A) {
	if h == nil || h.OnMiss == nil {
		return
	}
	defer func() { _ = recover() }()
	h.OnMiss(fingerprint, arg)
}

func (h *Hooks[A]) invalidate(fingerprint string, arg A) {
	if h == nil || h.OnInvalidate == nil {
		return
	}
	defer func() { _ = recover() }()
	h.OnInvalidate(fingerprint, arg)
}

func (h *Hooks[A]) evict(fingerprint string) {
	if h == nil || h.OnEvict == nil {
		return
	}
	defer func() { _ = recover() }()
	h.OnEvict(fingerprint)
}

func (h *Hooks[A]) discard(fingerprint string, err error) {
	if h == nil || h.OnDiscard == nil {
		return
	}
	defer func() { _ = recover() }()
	h.OnDiscard(fingerprint, err)
}
