package memoize

import "errors"

var (
	// ErrReentrantCall is returned when a call arrives for a fingerprint
	// whose entry is still in its synchronous invocation phase, i.e. before
	// the prior call produced a result handle. Such calls fail immediately
	// and leave the original entry untouched.
	ErrReentrantCall = errors.New("memoize: reentrant call for a fingerprint still in its invocation phase")

	// ErrNilFunc is returned by New when the wrapped function is nil.
	ErrNilFunc = errors.New("memoize: wrapped function must not be nil")

	// ErrNilHasher is returned by New when Config.Hasher is nil.
	ErrNilHasher = errors.New("memoize: hasher must not be nil")

	// ErrNilStateFunc is returned by New when Config.StateOf is nil.
	ErrNilStateFunc = errors.New("memoize: state function must not be nil")

	// ErrNegativeMaxEntries is returned by New when Config.MaxEntries is
	// negative. Zero is allowed and means "never retain anything".
	ErrNegativeMaxEntries = errors.New("memoize: max entries must not be negative")
)
