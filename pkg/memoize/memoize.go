package memoize

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/memoize/pkg/async"
	"github.com/dmitrymomot/memoize/pkg/recency"
)

// Func is the shape of a wrapped computation: a single-argument function
// producing a result asynchronously. Memoizer.Do and Wrap preserve this
// exact signature.
type Func[A any, R any] func(ctx context.Context, arg A) (R, error)

// Config configures a Memoizer.
type Config[A any, R any] struct {
	// Hasher derives the cache key from an argument. Required, must be pure:
	// equal arguments must produce equal fingerprints.
	Hasher func(A) string

	// StateOf derives the validity token from an argument. Required, must be
	// pure. A stored entry is reused only while its state compares equal to
	// the state of the incoming call.
	StateOf func(A) State

	// MaxEntries bounds the number of tracked entries. Required, must not be
	// negative. Zero disables retention entirely: every entry is evicted as
	// soon as its bookkeeping completes.
	MaxEntries int

	// ShouldCache, when set, is consulted after a computation succeeds. If
	// it returns false the entry is detached and the next call for the same
	// fingerprint starts fresh. Nil means "always cache". The predicate runs
	// without the memoizer's lock held, so it may call back into the
	// memoizer.
	ShouldCache func(result R, arg A) bool

	// Hooks holds optional lifecycle callbacks. See Hooks.
	Hooks *Hooks[A]

	// Logger receives debug-level cache activity. Nil discards.
	Logger *slog.Logger
}

// entry is the cached record for one fingerprint. The generation counter
// increases on every (re)invocation; settlement bookkeeping captured an
// older generation acts on nothing, which guards completed computations
// against mutating an entry they no longer own.
type entry[R any] struct {
	fingerprint string
	state       State
	future      *async.Future[R]
	inUse       bool
	resolved    bool
	generation  uint64
}

// Memoizer wraps a single-argument asynchronous computation with a bounded,
// LRU-evicting memoization layer. Create one with New; the zero value is not
// usable.
type Memoizer[A any, R any] struct {
	fn          Func[A, R]
	hasher      func(A) string
	stateOf     func(A) State
	maxEntries  int
	shouldCache func(R, A) bool
	hooks       *Hooks[A]
	log         *slog.Logger

	mu      sync.Mutex
	entries map[string]*entry[R]
	order   *recency.List[string]
}

// New validates cfg and returns a Memoizer wrapping fn. Each Memoizer owns
// its entire cache state; nothing is shared between instances.
func New[A any, R any](fn Func[A, R], cfg Config[A, R]) (*Memoizer[A, R], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if cfg.Hasher == nil {
		return nil, ErrNilHasher
	}
	if cfg.StateOf == nil {
		return nil, ErrNilStateFunc
	}
	if cfg.MaxEntries < 0 {
		return nil, ErrNegativeMaxEntries
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Memoizer[A, R]{
		fn:          fn,
		hasher:      cfg.Hasher,
		stateOf:     cfg.StateOf,
		maxEntries:  cfg.MaxEntries,
		shouldCache: cfg.ShouldCache,
		hooks:       cfg.Hooks,
		log:         log.With(slog.String("memoizer_id", uuid.NewString())),
		entries:     make(map[string]*entry[R]),
		order:       recency.New[string](),
	}, nil
}

// Wrap returns a function with the same signature as fn that transparently
// memoizes it, for callers that never need the underlying result handles.
func Wrap[A any, R any](fn Func[A, R], cfg Config[A, R]) (Func[A, R], error) {
	m, err := New(fn, cfg)
	if err != nil {
		return nil, err
	}
	return m.Do, nil
}

// Call runs the memoization protocol for arg and returns the shared result
// handle. Consecutive calls with an unchanged fingerprint and state return
// the identical *async.Future without re-invoking the computation; a changed
// state invalidates the entry and launches a fresh one.
//
// Call fails with ErrReentrantCall when another call for the same
// fingerprint is still in its invocation phase.
func (m *Memoizer[A, R]) Call(ctx context.Context, arg A) (*async.Future[R], error) {
	fingerprint := m.hasher(arg)
	state := m.stateOf(arg)

	m.mu.Lock()
	e, tracked := m.entries[fingerprint]

	// A settled computation whose bookkeeping has not run yet gets its
	// settlement decision made here, before reuse is considered. A failed
	// or predicate-rejected result is never served as live.
	for tracked && !e.inUse && e.future.IsComplete() && !e.resolved {
		future, generation := e.future, e.generation
		m.mu.Unlock()

		result, err := future.Await()
		m.finalize(e, generation, arg, result, err)

		m.mu.Lock()
		e, tracked = m.entries[fingerprint]
	}

	if tracked && e.inUse {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w (fingerprint %q)", ErrReentrantCall, fingerprint)
	}

	if tracked && e.state == state {
		m.order.Promote(fingerprint)
		future := e.future
		m.mu.Unlock()

		m.hooks.hit(fingerprint, arg)
		m.log.DebugContext(ctx, "cache hit", slog.String("fingerprint", fingerprint))
		return future, nil
	}

	if !tracked {
		e = &entry[R]{fingerprint: fingerprint}
		m.entries[fingerprint] = e
	}
	e.state = state
	e.resolved = false
	e.inUse = true
	e.generation++
	generation := e.generation
	m.order.Promote(fingerprint)
	m.mu.Unlock()

	// Invocation phase: the entry is marked in use and the lock is dropped.
	// A concurrent call for the same fingerprint lands in the inUse branch
	// above until the result handle is stored.
	if tracked {
		m.hooks.invalidate(fingerprint, arg)
		m.log.DebugContext(ctx, "entry invalidated",
			slog.String("fingerprint", fingerprint),
			slog.String("state", state.String()))
	} else {
		m.hooks.miss(fingerprint, arg)
		m.log.DebugContext(ctx, "cache miss", slog.String("fingerprint", fingerprint))
	}

	future := async.Async(ctx, arg, m.fn)

	m.mu.Lock()
	e.future = future
	e.inUse = false
	evicted := m.evictLocked()
	m.mu.Unlock()

	for _, victim := range evicted {
		m.hooks.evict(victim)
		m.log.DebugContext(ctx, "entry evicted", slog.String("fingerprint", victim))
	}

	go m.settle(e, generation, arg, future)

	return future, nil
}

// Do is Call followed by awaiting the result handle, giving the wrapped
// function's original signature.
func (m *Memoizer[A, R]) Do(ctx context.Context, arg A) (R, error) {
	future, err := m.Call(ctx, arg)
	if err != nil {
		var zero R
		return zero, err
	}
	return future.Await()
}

// Len reports the number of tracked entries.
func (m *Memoizer[A, R]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

// Keys returns the tracked fingerprints ordered from most to least recently
// used. Intended for diagnostics and tests.
func (m *Memoizer[A, R]) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Values()
}

// EntryInfo is a diagnostic snapshot of one tracked entry.
type EntryInfo struct {
	Fingerprint string
	State       State
	Resolved    bool
}

// Entries returns diagnostic snapshots of all tracked entries ordered from
// most to least recently used.
func (m *Memoizer[A, R]) Entries() []EntryInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := m.order.Values()
	out := make([]EntryInfo, 0, len(keys))
	for _, key := range keys {
		e := m.entries[key]
		out = append(out, EntryInfo{
			Fingerprint: e.fingerprint,
			State:       e.state,
			Resolved:    e.resolved,
		})
	}
	return out
}

// settle performs post-completion bookkeeping for one invocation.
func (m *Memoizer[A, R]) settle(e *entry[R], generation uint64, arg A, future *async.Future[R]) {
	result, err := future.Await()
	m.finalize(e, generation, arg, result, err)
}

// finalize applies the settlement decision for one invocation: a failed or
// predicate-rejected result detaches the entry, anything else marks it
// resolved. The predicate runs without the lock held. finalize only acts if
// the entry is still tracked and the captured generation is current, so a
// completion superseded by invalidation or eviction changes nothing; when a
// call and the settlement goroutine race here, the entry settles once and
// the discard callback fires once.
func (m *Memoizer[A, R]) finalize(e *entry[R], generation uint64, arg A, result R, err error) {
	keep := err == nil && (m.shouldCache == nil || m.shouldCache(result, arg))

	m.mu.Lock()
	current, tracked := m.entries[e.fingerprint]
	if !tracked || current != e || e.generation != generation {
		m.mu.Unlock()
		return
	}

	if keep {
		e.resolved = true
		m.mu.Unlock()
		return
	}

	m.detachLocked(e.fingerprint)
	m.mu.Unlock()

	if err != nil {
		m.hooks.discard(e.fingerprint, err)
		m.log.Debug("entry discarded after failure",
			slog.String("fingerprint", e.fingerprint),
			slog.Any("error", err))
		return
	}

	m.hooks.discard(e.fingerprint, nil)
	m.log.Debug("entry rejected by cache predicate",
		slog.String("fingerprint", e.fingerprint))
}

// evictLocked removes least-recent entries until the tracked count fits
// MaxEntries again. Entries in their invocation phase are never victims, so
// the reentrancy guard survives capacity pressure; they are trimmed by the
// eviction pass that runs when their own handle is stored. Must be called
// with the lock held; returns the evicted fingerprints so callbacks can run
// outside the lock.
func (m *Memoizer[A, R]) evictLocked() []string {
	excess := m.order.Len() - m.maxEntries
	if excess <= 0 {
		return nil
	}

	victims := make([]string, 0, excess)
	m.order.Backward(func(fingerprint string) bool {
		if !m.entries[fingerprint].inUse {
			victims = append(victims, fingerprint)
		}
		return len(victims) < excess
	})

	for _, victim := range victims {
		m.detachLocked(victim)
	}
	return victims
}

// detachLocked removes a fingerprint from both the entry table and the
// recency order. Must be called with the lock held.
func (m *Memoizer[A, R]) detachLocked(fingerprint string) {
	m.order.Remove(fingerprint)
	delete(m.entries, fingerprint)
}
