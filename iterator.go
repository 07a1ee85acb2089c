package synclistx

import "iter"

// Iterator walks a list's elements in order. A handle from a
// snapshot-iterating list owns a private deep copy and never blocks anyone;
// a handle from a live-iterating list holds the list's shared lock from the
// first Next until Close, blocking writers for that whole window.
//
// Handles from the same list are independent: closing one never affects
// another.
type Iterator[T any] struct {
	list   *List[T] // nil for snapshot handles
	items  []T
	idx    int
	cur    T
	active bool
	closed bool
}

// Iterator returns a new iterator using the strategy the list was built
// with. Snapshot handles pay the copy here; live handles defer lock
// acquisition to the first Next.
func (l *List[T]) Iterator() *Iterator[T] {
	if l.live {
		return &Iterator[T]{list: l}
	}
	return &Iterator[T]{items: l.Snapshot()}
}

// Next advances to the next element, reporting whether one exists. After
// Close it always reports false.
func (it *Iterator[T]) Next() bool {
	if it.closed {
		return false
	}
	if it.list != nil && !it.active {
		it.list.policy.RLock()
		it.active = true
		it.items = it.list.store.Items()
	}
	if it.idx >= len(it.items) {
		return false
	}
	it.cur = it.items[it.idx]
	it.idx++
	return true
}

// Value returns the element produced by the last successful Next.
func (it *Iterator[T]) Value() T {
	return it.cur
}

// Close releases the iterator, dropping the shared lock if this is a live
// handle. A second Close returns ErrIteratorClosed and releases nothing.
func (it *Iterator[T]) Close() error {
	if it.closed {
		return ErrIteratorClosed
	}
	it.closed = true
	if it.active {
		it.active = false
		it.items = nil
		it.list.policy.RUnlock()
	}
	return nil
}

// All returns an allocation-light iter.Seq over the elements. For snapshot
// lists the copy is taken once when iteration starts and traversal holds no
// lock; for live lists the shared lock is held for the whole loop and
// released when it ends or breaks early.
func (l *List[T]) All() iter.Seq[T] {
	if l.live {
		return func(yield func(T) bool) {
			l.policy.RLock()
			defer l.policy.RUnlock()
			for _, v := range l.store.Items() {
				if !yield(v) {
					return
				}
			}
		}
	}
	return func(yield func(T) bool) {
		for _, v := range l.Snapshot() {
			if !yield(v) {
				return
			}
		}
	}
}
