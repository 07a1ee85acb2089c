// Package primitives provides the foundational, zero-dependency data
// structures for the container library.
//
// This package uses ONLY the Go standard library. The Store here is the
// plain, unsynchronized sequence that every synchronized variant wraps;
// keeping it free of locks keeps the synchronization policies the single
// place where concurrency is decided.
//
// Core invariants:
// - Indices are contiguous 0..Len()-1
// - Insert shifts later elements up by one, RemoveAt shifts them down
// - Clone produces a store that shares nothing with its source
package primitives
