// Package core provides the synchronization tier of the container library:
// the pluggable policies that wrap read and write critical sections.
package core

import "sync"

// Policy wraps a container's critical sections. Read and Write run op under
// the policy's shared and exclusive disciplines respectively, releasing the
// lock on every exit path. RLock and RUnlock lease the shared side out to
// live iterators, which hold it across calls.
//
// A container is bound to one Policy for its whole lifetime.
type Policy interface {
	Read(op func() error) error
	Write(op func() error) error
	RLock()
	RUnlock()
}

// Exclusive serializes reads and writes behind a single mutex. Simplest
// discipline; readers block each other. A failed write may leave the
// wrapped state partially mutated.
type Exclusive struct {
	mu sync.Mutex
}

// NewExclusive creates an Exclusive policy with a fresh lock.
func NewExclusive() *Exclusive {
	return &Exclusive{}
}

func (p *Exclusive) Read(op func() error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return op()
}

func (p *Exclusive) Write(op func() error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return op()
}

func (p *Exclusive) RLock()   { p.mu.Lock() }
func (p *Exclusive) RUnlock() { p.mu.Unlock() }

// Shared uses a reader-writer lock: reads run concurrently with each other,
// writes run alone. Same no-rollback caveat as Exclusive for failed writes.
type Shared struct {
	mu sync.RWMutex
}

// NewShared creates a Shared policy with a fresh lock.
func NewShared() *Shared {
	return &Shared{}
}

func (p *Shared) Read(op func() error) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return op()
}

func (p *Shared) Write(op func() error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return op()
}

func (p *Shared) RLock()   { p.mu.RLock() }
func (p *Shared) RUnlock() { p.mu.RUnlock() }

// Transactional layers rollback on the shared/exclusive discipline. Before
// each write it runs capture under a shared acquisition, so the snapshot is
// never taken from a torn store. If the write op fails, the restore
// returned by capture runs under the still-held exclusive lock and the
// op's error is returned unchanged.
//
// Every write pays for a full capture, whatever the op's size.
type Transactional struct {
	Shared
	capture func() (restore func())
}

// NewTransactional creates a Transactional policy. capture must deep-copy
// the guarded state and return the function that swaps the copy back in.
func NewTransactional(capture func() func()) *Transactional {
	return &Transactional{capture: capture}
}

func (p *Transactional) Write(op func() error) error {
	p.mu.RLock()
	restore := p.capture()
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := op(); err != nil {
		restore()
		return err
	}
	return nil
}
