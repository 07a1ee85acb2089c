// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/comalice/synclistx"
)

// GenSeeded builds a list preloaded with n ints under the given options.
func GenSeeded(n int, opts ...synclistx.Option[int]) *synclistx.List[int] {
	src := make([]int, n)
	for i := range src {
		src[i] = i
	}
	l, err := synclistx.FromSlice(src, opts...)
	if err != nil {
		panic(fmt.Sprintf("seed %d: %v", n, err))
	}
	return l
}

// PolicyCases pairs each policy name with its option, for b.Run sub-benchmarks.
func PolicyCases() map[string]synclistx.Option[int] {
	return map[string]synclistx.Option[int]{
		"exclusive":     synclistx.WithExclusiveLock[int](),
		"shared":        synclistx.WithSharedLock[int](),
		"transactional": synclistx.WithTransactions[int](),
	}
}
