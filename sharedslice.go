package synclistx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comalice/synclistx/internal/locking"
)

// sharedLockTimeout bounds the wait for a destination's lock in
// CopyToShared. The two-lock order there is always destination first, then
// this list's read path; the bound keeps a cross-container deadlock from
// hanging callers forever.
const sharedLockTimeout = 5 * time.Second

// SharedSlice is a fixed-length destination slice guarded by its own
// timed lock: the externally synchronized counterpart of a plain []T
// destination. Its lock is acquired by convention, not ownership; anyone
// holding a reference may take it.
type SharedSlice[T any] struct {
	lock  *locking.TimedMutex
	items []T
}

// NewSharedSlice creates a SharedSlice of length n.
func NewSharedSlice[T any](n int) *SharedSlice[T] {
	return &SharedSlice[T]{
		lock:  locking.NewTimedMutex(),
		items: make([]T, n),
	}
}

// Lock acquires the slice's lock, giving up when ctx is done.
func (s *SharedSlice[T]) Lock(ctx context.Context) error {
	return s.lock.Lock(ctx)
}

// Unlock releases the slice's lock.
func (s *SharedSlice[T]) Unlock() {
	s.lock.Unlock()
}

// Len returns the slice's fixed length.
func (s *SharedSlice[T]) Len() int {
	return len(s.items)
}

// At returns the element at index i. Callers coordinate through
// Lock/Unlock.
func (s *SharedSlice[T]) At(i int) T {
	return s.items[i]
}

// Snapshot returns a copy of the contents, taken under the lock.
func (s *SharedSlice[T]) Snapshot(ctx context.Context) ([]T, error) {
	if err := s.lock.Lock(ctx); err != nil {
		return nil, err
	}
	defer s.lock.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out, nil
}

// CopyToShared copies the whole list into dst starting at offset, first
// acquiring dst's lock with a five second bound (tighter of the bound and
// ctx's own deadline). On timeout the copy is not attempted and
// ErrLockTimeout is returned; a caller-cancelled ctx surfaces as ctx.Err().
// The destination lock is released on every path before returning.
func (l *List[T]) CopyToShared(ctx context.Context, dst *SharedSlice[T], offset int) error {
	lockCtx, cancel := context.WithTimeout(ctx, sharedLockTimeout)
	defer cancel()

	if err := dst.lock.Lock(lockCtx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.logger.Debug().Dur("bound", sharedLockTimeout).Msg("destination lock wait timed out")
			return fmt.Errorf("%w (bound %s)", ErrLockTimeout, sharedLockTimeout)
		}
		return err
	}
	defer dst.lock.Unlock()

	// Destination lock held (outer); now the list's own read path (inner).
	return l.policy.Read(func() error {
		if offset < 0 || offset+l.store.Len() > len(dst.items) {
			return fmt.Errorf("%w: copy of %d at offset %d into %d",
				ErrIndexOutOfRange, l.store.Len(), offset, len(dst.items))
		}
		l.store.CopyInto(dst.items, offset)
		return nil
	})
}
