package synclistx

import "errors"

var (
	// ErrIndexOutOfRange is wrapped by every range-violating operation.
	// The violation is detected under the list's lock, before any mutation.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNilSource is returned by FromSlice for a nil source slice.
	ErrNilSource = errors.New("nil source slice")

	// ErrNegativeCapacity is returned by NewWithCapacity for a capacity
	// hint below zero.
	ErrNegativeCapacity = errors.New("negative capacity")

	// ErrLockTimeout is returned by CopyToShared when the destination's
	// lock cannot be acquired within the bound; the copy is not attempted.
	ErrLockTimeout = errors.New("timed out waiting for destination lock")

	// ErrIteratorClosed is returned by Close on an already-closed
	// iterator. The underlying lock is never released twice.
	ErrIteratorClosed = errors.New("iterator already closed")
)
