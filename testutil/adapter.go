package testutil

import (
	"golang.org/x/sync/errgroup"

	"github.com/comalice/synclistx"
)

// Variant names one synchronization policy and the option that selects it.
// This allows running the same test suite across every policy.
type Variant[T any] struct {
	Name string
	Opt  synclistx.Option[T]
}

// Variants returns every policy variant a list can be built with.
func Variants[T any]() []Variant[T] {
	return []Variant[T]{
		{Name: "exclusive", Opt: synclistx.WithExclusiveLock[T]()},
		{Name: "shared", Opt: synclistx.WithSharedLock[T]()},
		{Name: "transactional", Opt: synclistx.WithTransactions[T]()},
	}
}

// New builds an empty list under the variant's policy, panicking on
// construction failure (tests only).
func (v Variant[T]) New() *synclistx.List[T] {
	l, err := synclistx.New[T](v.Opt)
	if err != nil {
		panic(err)
	}
	return l
}

// Seeded builds a list preloaded with src under the variant's policy.
func (v Variant[T]) Seeded(src []T) *synclistx.List[T] {
	l, err := synclistx.FromSlice(src, v.Opt)
	if err != nil {
		panic(err)
	}
	return l
}

// RunConcurrently starts n goroutines over fn and waits for all of them,
// returning the first error.
func RunConcurrently(n int, fn func(worker int) error) error {
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error { return fn(i) })
	}
	return g.Wait()
}
