// Package locking provides the lock primitive used where two containers'
// locks interact: a mutex whose acquisition can carry a deadline.
//
// Lock ordering: a TimedMutex guarding a copy destination is always taken
// before the source container's own lock, never after it.
package locking

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// TimedMutex is a mutual-exclusion lock built on a weighted semaphore so
// that acquisition can be bounded by a context deadline.
type TimedMutex struct {
	sem *semaphore.Weighted
}

// NewTimedMutex creates an unlocked TimedMutex.
func NewTimedMutex() *TimedMutex {
	return &TimedMutex{sem: semaphore.NewWeighted(1)}
}

// Lock acquires the mutex, giving up with ctx.Err() when ctx is done first.
func (m *TimedMutex) Lock(ctx context.Context) error {
	return m.sem.Acquire(ctx, 1)
}

// TryLock acquires the mutex without blocking.
func (m *TimedMutex) TryLock() bool {
	return m.sem.TryAcquire(1)
}

// Unlock releases the mutex. Only the current holder may call it.
func (m *TimedMutex) Unlock() {
	m.sem.Release(1)
}
