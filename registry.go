package synclistx

import (
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Handle is the element-type-independent view of a registered list.
type Handle interface {
	Len() int
	Clear()
}

// Registry is a process-wide directory of named lists, for handing one
// shared container to otherwise unrelated goroutines. Lists of different
// element types can live side by side; Lookup recovers the typed form.
type Registry struct {
	lists cmap.ConcurrentMap[string, Handle]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{lists: cmap.New[Handle]()}
}

// Register adds l under name, replacing any previous entry.
func Register[T any](r *Registry, name string, l *List[T]) {
	r.lists.Set(name, l)
}

// Lookup fetches the list registered under name. ok is false when the name
// is unknown or the entry holds a list of a different element type.
func Lookup[T any](r *Registry, name string) (*List[T], bool) {
	h, found := r.lists.Get(name)
	if !found {
		return nil, false
	}
	l, ok := h.(*List[T])
	return l, ok
}

// Get fetches the untyped handle registered under name.
func (r *Registry) Get(name string) (Handle, bool) {
	return r.lists.Get(name)
}

// Deregister removes the entry under name, if any.
func (r *Registry) Deregister(name string) {
	r.lists.Remove(name)
}

// Names returns the registered names, in no particular order.
func (r *Registry) Names() []string {
	return r.lists.Keys()
}
