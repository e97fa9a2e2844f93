package recency

import "container/list"

// List maintains a total most- to least-recently-used order over a set of
// opaque handles. All operations are O(1).
//
// List is not safe for concurrent use. It is designed to be embedded in a
// structure that provides its own synchronization, so that list mutations
// stay atomic with the owner's other bookkeeping.
type List[T comparable] struct {
	order *list.List
	elems map[T]*list.Element
}

// New creates an empty recency list.
func New[T comparable]() *List[T] {
	return &List[T]{
		order: list.New(),
		elems: make(map[T]*list.Element),
	}
}

// Promote marks v as the most recently used handle. If v is not yet tracked
// it is inserted at the front; if it is already tracked it is moved there.
// Promoting the current front is a no-op beyond relinking.
func (l *List[T]) Promote(v T) {
	if elem, ok := l.elems[v]; ok {
		l.order.MoveToFront(elem)
		return
	}
	l.elems[v] = l.order.PushFront(v)
}

// Remove unlinks v from the order. Removing a handle that is not tracked is
// a safe no-op. Returns true if the handle was tracked.
func (l *List[T]) Remove(v T) bool {
	elem, ok := l.elems[v]
	if !ok {
		return false
	}
	l.order.Remove(elem)
	delete(l.elems, v)
	return true
}

// Len reports the number of tracked handles.
func (l *List[T]) Len() int {
	return l.order.Len()
}

// Contains reports whether v is tracked.
func (l *List[T]) Contains(v T) bool {
	_, ok := l.elems[v]
	return ok
}

// LeastRecent returns the least recently used handle without removing it.
// The second return value is false when the list is empty.
func (l *List[T]) LeastRecent() (T, bool) {
	if elem := l.order.Back(); elem != nil {
		return elem.Value.(T), true
	}
	var zero T
	return zero, false
}

// MostRecent returns the most recently used handle without removing it.
// The second return value is false when the list is empty.
func (l *List[T]) MostRecent() (T, bool) {
	if elem := l.order.Front(); elem != nil {
		return elem.Value.(T), true
	}
	var zero T
	return zero, false
}

// Backward visits handles from least to most recently used, stopping when
// visit returns false. The list must not be mutated during the walk.
func (l *List[T]) Backward(visit func(T) bool) {
	for elem := l.order.Back(); elem != nil; elem = elem.Prev() {
		if !visit(elem.Value.(T)) {
			return
		}
	}
}

// Values returns a snapshot of the tracked handles ordered from most to
// least recently used. Intended for diagnostics and tests.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.order.Len())
	for elem := l.order.Front(); elem != nil; elem = elem.Next() {
		out = append(out, elem.Value.(T))
	}
	return out
}
