// Package synclistx provides a mutable, sequential container that is safe
// to read and write from multiple goroutines.
//
// Every List exposes the same sequence operations; how those operations are
// made safe is a pluggable policy fixed at construction. WithExclusiveLock
// puts one mutex in front of everything, WithSharedLock (the default) lets
// readers run concurrently, and WithTransactions additionally rolls the
// whole list back to its pre-call state when a write fails partway.
//
// Writers on one List never interleave; under the shared and transactional
// policies a failed write either leaves the contents unspecified (shared)
// or exactly as they were (transactional).
package synclistx

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/comalice/synclistx/internal/core"
	"github.com/comalice/synclistx/internal/observe"
	"github.com/comalice/synclistx/internal/primitives"
)

// EqualFunc reports whether two elements are equal.
type EqualFunc[T any] func(a, b T) bool

// CloneFunc produces an independent copy of one element. For composite
// elements it must copy the whole graph: mutating the original afterward
// must never show through the copy.
type CloneFunc[T any] func(v T) T

// MatchFunc is a fallible predicate over one element.
type MatchFunc[T any] func(v T) (bool, error)

// List is a sequential, duplicate-permitting container safe for concurrent
// use. The zero value is not usable; construct with New, NewWithCapacity or
// FromSlice.
type List[T any] struct {
	store  *primitives.Store[T]
	policy core.Policy
	equal  EqualFunc[T]
	clone  CloneFunc[T]
	live   bool
	logger zerolog.Logger
	pub    *observe.Publisher
}

// New creates an empty list.
func New[T any](opts ...Option[T]) (*List[T], error) {
	return NewWithCapacity[T](0, opts...)
}

// NewWithCapacity creates an empty list with a capacity hint.
func NewWithCapacity[T any](capacity int, opts ...Option[T]) (*List[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	l := build(opts)
	l.store = primitives.NewStore[T](capacity)
	return l, nil
}

// FromSlice creates a list holding a copy of src's elements, cloned in via
// the list's clone func. The list never aliases the caller's slice.
func FromSlice[T any](src []T, opts ...Option[T]) (*List[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	l := build(opts)
	l.store = primitives.NewStore[T](len(src))
	for _, v := range src {
		l.store.Append(l.clone(v))
	}
	return l, nil
}

func build[T any](opts []Option[T]) *List[T] {
	cfg := config[T]{
		equal:  func(a, b T) bool { return reflect.DeepEqual(a, b) },
		clone:  func(v T) T { return v },
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &List[T]{
		equal:  cfg.equal,
		clone:  cfg.clone,
		live:   cfg.liveIter,
		logger: cfg.logger,
		pub:    cfg.publisher,
	}
	switch cfg.policy {
	case policyExclusive:
		l.policy = core.NewExclusive()
	case policyTransactional:
		l.policy = core.NewTransactional(l.capture)
	default:
		l.policy = core.NewShared()
	}
	return l
}

// capture deep-copies the store and returns the restore that swaps the copy
// back in. Called by the transactional policy before every write.
func (l *List[T]) capture() func() {
	snap := l.store.Clone(l.clone)
	return func() {
		l.logger.Debug().Int("len", snap.Len()).Msg("write failed, restoring snapshot")
		l.store.Restore(snap)
	}
}

func (l *List[T]) publish(op observe.Op, index int) {
	if l.pub == nil {
		return
	}
	l.pub.Publish(observe.Event{Op: op, Index: index})
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	n := 0
	_ = l.policy.Read(func() error {
		n = l.store.Len()
		return nil
	})
	return n
}

// Add appends v.
func (l *List[T]) Add(v T) {
	at := 0
	_ = l.policy.Write(func() error {
		at = l.store.Len()
		l.store.Append(v)
		return nil
	})
	l.publish(observe.OpAdd, at)
}

// Insert places v at index i, shifting elements at or after i up by one.
// Valid indices run from 0 through Len inclusive.
func (l *List[T]) Insert(i int, v T) error {
	err := l.policy.Write(func() error {
		if i < 0 || i > l.store.Len() {
			return fmt.Errorf("%w: insert at %d, len %d", ErrIndexOutOfRange, i, l.store.Len())
		}
		l.store.Insert(i, v)
		return nil
	})
	if err != nil {
		return err
	}
	l.publish(observe.OpInsert, i)
	return nil
}

// RemoveAt removes and returns the element at index i.
func (l *List[T]) RemoveAt(i int) (T, error) {
	var removed T
	err := l.policy.Write(func() error {
		if i < 0 || i >= l.store.Len() {
			return fmt.Errorf("%w: remove at %d, len %d", ErrIndexOutOfRange, i, l.store.Len())
		}
		removed = l.store.RemoveAt(i)
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	l.publish(observe.OpRemove, i)
	return removed, nil
}

// At returns the element at index i.
func (l *List[T]) At(i int) (T, error) {
	var v T
	err := l.policy.Read(func() error {
		if i < 0 || i >= l.store.Len() {
			return fmt.Errorf("%w: at %d, len %d", ErrIndexOutOfRange, i, l.store.Len())
		}
		v = l.store.At(i)
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// SetAt replaces the element at index i.
func (l *List[T]) SetAt(i int, v T) error {
	err := l.policy.Write(func() error {
		if i < 0 || i >= l.store.Len() {
			return fmt.Errorf("%w: set at %d, len %d", ErrIndexOutOfRange, i, l.store.Len())
		}
		l.store.SetAt(i, v)
		return nil
	})
	if err != nil {
		return err
	}
	l.publish(observe.OpSet, i)
	return nil
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	_ = l.policy.Write(func() error {
		l.store.Clear()
		return nil
	})
	l.publish(observe.OpClear, -1)
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	idx := -1
	_ = l.policy.Read(func() error {
		idx = l.store.IndexFunc(func(x T) bool { return l.equal(x, v) })
		return nil
	})
	return idx
}

// Contains reports whether an element equal to v is present.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// Remove deletes the first element equal to v, reporting whether one was
// found.
func (l *List[T]) Remove(v T) bool {
	at := -1
	_ = l.policy.Write(func() error {
		i := l.store.IndexFunc(func(x T) bool { return l.equal(x, v) })
		if i < 0 {
			return nil
		}
		l.store.RemoveAt(i)
		at = i
		return nil
	})
	if at < 0 {
		return false
	}
	l.publish(observe.OpRemove, at)
	return true
}

// RemoveAll deletes every element match reports true for and returns how
// many were removed. If match returns an error partway through, the error
// propagates unchanged; under the transactional policy the list is rolled
// back first, under the other policies earlier removals stick.
func (l *List[T]) RemoveAll(match MatchFunc[T]) (int, error) {
	removed := 0
	err := l.policy.Write(func() error {
		for i := 0; i < l.store.Len(); {
			ok, err := match(l.store.At(i))
			if err != nil {
				return err
			}
			if !ok {
				i++
				continue
			}
			l.store.RemoveAt(i)
			removed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		l.publish(observe.OpRemove, -1)
	}
	return removed, nil
}

// Snapshot returns a deep copy of the contents, in order.
func (l *List[T]) Snapshot() []T {
	var out []T
	_ = l.policy.Read(func() error {
		out = make([]T, 0, l.store.Len())
		for _, v := range l.store.Items() {
			out = append(out, l.clone(v))
		}
		return nil
	})
	return out
}

// CopyTo copies the whole list into dst starting at offset. dst carries no
// lock of its own, so only the list's read discipline applies.
func (l *List[T]) CopyTo(dst []T, offset int) error {
	return l.policy.Read(func() error {
		if offset < 0 || offset+l.store.Len() > len(dst) {
			return fmt.Errorf("%w: copy of %d at offset %d into %d",
				ErrIndexOutOfRange, l.store.Len(), offset, len(dst))
		}
		l.store.CopyInto(dst, offset)
		return nil
	})
}
