package synclistx

import (
	"github.com/rs/zerolog"

	"github.com/comalice/synclistx/internal/observe"
)

// Option configures a List at construction time.
type Option[T any] func(*config[T])

type policyKind int

const (
	policyShared policyKind = iota
	policyExclusive
	policyTransactional
)

type config[T any] struct {
	policy    policyKind
	liveIter  bool
	equal     EqualFunc[T]
	clone     CloneFunc[T]
	logger    zerolog.Logger
	publisher *observe.Publisher
}

// WithExclusiveLock serializes every operation, reads included, behind a
// single mutex.
func WithExclusiveLock[T any]() Option[T] {
	return func(c *config[T]) { c.policy = policyExclusive }
}

// WithSharedLock uses a reader-writer lock: concurrent readers, one
// exclusive writer. This is the default.
func WithSharedLock[T any]() Option[T] {
	return func(c *config[T]) { c.policy = policyShared }
}

// WithTransactions layers write rollback on the shared lock: a failed write
// leaves the list exactly as it was before the call, and the original error
// is returned unchanged. Every write pays for a full deep copy of the
// contents.
func WithTransactions[T any]() Option[T] {
	return func(c *config[T]) { c.policy = policyTransactional }
}

// WithSnapshotIterators makes Iterator and All copy the contents once up
// front and traverse the copy with no lock held. This is the default.
func WithSnapshotIterators[T any]() Option[T] {
	return func(c *config[T]) { c.liveIter = false }
}

// WithLiveIterators makes Iterator and All hold the list's shared lock for
// the iteration's lifetime instead of copying. A handle that is never
// closed blocks writers indefinitely; use only when consumers are trusted
// to close promptly and elements are safe to observe in place.
func WithLiveIterators[T any]() Option[T] {
	return func(c *config[T]) { c.liveIter = true }
}

// WithEqual sets the equality used by IndexOf, Contains and Remove.
// Defaults to reflect.DeepEqual.
func WithEqual[T any](equal EqualFunc[T]) Option[T] {
	return func(c *config[T]) { c.equal = equal }
}

// WithClone sets the per-element deep copy used by snapshots and
// transactional rollback. Defaults to a plain value copy; supply a
// structural clone whenever elements hold references.
func WithClone[T any](clone CloneFunc[T]) Option[T] {
	return func(c *config[T]) { c.clone = clone }
}

// WithLogger attaches a logger. The list logs rollbacks and destination
// lock timeouts at debug level and stays silent on hot paths.
func WithLogger[T any](logger zerolog.Logger) Option[T] {
	return func(c *config[T]) { c.logger = logger }
}

// WithPublisher attaches a mutation publisher. Successful writes are
// announced after the write lock is released.
func WithPublisher[T any](p *observe.Publisher) Option[T] {
	return func(c *config[T]) { c.publisher = p }
}
