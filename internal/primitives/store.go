package primitives

// Store is a growable, index-addressable, insertion-ordered sequence that
// permits duplicates. It performs no synchronization and no range checking;
// both are the responsibility of the synchronized facade that owns it.
type Store[T any] struct {
	items []T
}

// NewStore creates an empty store with the given capacity hint.
func NewStore[T any](capacity int) *Store[T] {
	return &Store[T]{items: make([]T, 0, capacity)}
}

// Len returns the number of elements.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// At returns the element at index i.
func (s *Store[T]) At(i int) T {
	return s.items[i]
}

// SetAt replaces the element at index i.
func (s *Store[T]) SetAt(i int, v T) {
	s.items[i] = v
}

// Append adds v after the last element.
func (s *Store[T]) Append(v T) {
	s.items = append(s.items, v)
}

// Insert places v at index i and shifts elements at or after i up by one.
func (s *Store[T]) Insert(i int, v T) {
	var zero T
	s.items = append(s.items, zero)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = v
}

// RemoveAt removes and returns the element at index i, shifting later
// elements down by one.
func (s *Store[T]) RemoveAt(i int) T {
	v := s.items[i]
	copy(s.items[i:], s.items[i+1:])
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return v
}

// Clear removes all elements, keeping the allocated capacity.
func (s *Store[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// IndexFunc returns the index of the first element for which match returns
// true, or -1.
func (s *Store[T]) IndexFunc(match func(T) bool) int {
	for i, v := range s.items {
		if match(v) {
			return i
		}
	}
	return -1
}

// CopyInto copies every element into dst starting at offset. dst must have
// room; the caller checks.
func (s *Store[T]) CopyInto(dst []T, offset int) {
	copy(dst[offset:], s.items)
}

// Items returns the live backing slice. Callers must hold whatever lock
// guards this store for as long as they use the returned slice.
func (s *Store[T]) Items() []T {
	return s.items
}

// Clone returns a fully independent copy, passing each element through
// elem. Mutating either store afterward never affects the other.
func (s *Store[T]) Clone(elem func(T) T) *Store[T] {
	out := make([]T, len(s.items))
	for i, v := range s.items {
		out[i] = elem(v)
	}
	return &Store[T]{items: out}
}

// Restore replaces this store's contents wholesale with from's. Used to
// roll a store back to a previously cloned state.
func (s *Store[T]) Restore(from *Store[T]) {
	s.items = from.items
}
