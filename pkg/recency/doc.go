// Package recency provides an O(1) most-recently-used ordering structure
// for implementing LRU eviction policies.
//
// The package offers a single generic List type that keeps an arbitrary set
// of comparable handles in strict recency order: the front is always the
// handle touched most recently, the back the one touched least recently.
//
// # Usage
//
//	l := recency.New[string]()
//
//	l.Promote("a") // order: a
//	l.Promote("b") // order: b, a
//	l.Promote("a") // order: a, b
//
//	victim, ok := l.LeastRecent() // "b", true
//	l.Remove(victim)
//
// # Design
//
// List pairs a doubly-linked list with a handle-to-element map, giving O(1)
// promotion, removal and tail access without intrusive links on the caller's
// own types. Handles only need to be comparable.
//
// # Concurrency
//
// List performs no locking of its own. Owners that mutate a List together
// with other state (a lookup table, counters) should guard both with the
// same mutex so the structures cannot disagree.
package recency
