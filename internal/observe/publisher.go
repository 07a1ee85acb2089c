// Package observe provides in-process hooks over container mutations: a
// publisher that fans successful writes out to subscribers. Delivery is
// best-effort with drop on backpressure; it is not persistence and carries
// no ordering promises across subscribers.
package observe

import (
	"sync"

	"github.com/google/uuid"
)

// Op identifies the kind of mutation an Event describes.
type Op string

const (
	OpAdd    Op = "add"
	OpInsert Op = "insert"
	OpSet    Op = "set"
	OpRemove Op = "remove"
	OpClear  Op = "clear"
)

// Event describes one successful mutation.
type Event struct {
	Op    Op
	Index int // -1 when the op has no single index
}

// Publisher fans mutation events out to subscribers. Publish never blocks
// the mutating goroutine: events are dropped per subscriber when its buffer
// is full.
type Publisher struct {
	mu     sync.RWMutex
	subs   map[string]chan Event
	buffer int
	closed bool
}

// NewPublisher creates a Publisher whose subscriber channels buffer the
// given number of events.
func NewPublisher(buffer int) *Publisher {
	if buffer <= 0 {
		buffer = 64
	}
	return &Publisher{subs: make(map[string]chan Event), buffer: buffer}
}

// Subscribe registers a new subscriber, returning its handle and channel.
// The channel closes on Unsubscribe or Close.
func (p *Publisher) Subscribe() (string, <-chan Event) {
	id := uuid.NewString()
	ch := make(chan Event, p.buffer)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		close(ch)
		return id, ch
	}
	p.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel. Unknown or
// already-removed handles are ignored.
func (p *Publisher) Unsubscribe(id string) {
	p.mu.Lock()
	ch, ok := p.subs[id]
	delete(p.subs, id)
	p.mu.Unlock()
	if ok {
		close(ch)
	}
}

// Publish delivers evt to every subscriber, dropping it for any whose
// buffer is full.
func (p *Publisher) Publish(evt Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, ch := range p.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

// Close closes every subscriber channel and rejects future subscriptions.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for id, ch := range p.subs {
		delete(p.subs, id)
		close(ch)
	}
}
