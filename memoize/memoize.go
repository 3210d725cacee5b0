// Package memoize caches the results of a function in a hashtable.Table.
package memoize

import "github.com/ddaletski/rstructs/hashtable"

type Memoize[K comparable, V any] struct {
	f       func(K) V
	results *hashtable.Table[K, V]
}

func New[K comparable, V any](f func(K) V) *Memoize[K, V] {
	return &Memoize[K, V]{
		f:       f,
		results: hashtable.New[K, V](),
	}
}

// Call returns f(x), computing it at most once per distinct x.
func (m *Memoize[K, V]) Call(x K) V {
	cached, ok := m.results.Get(x)
	if ok {
		return cached
	}
	y := m.f(x)
	m.results.Insert(x, y)
	return y
}

// Cached returns the number of distinct arguments with a saved result.
func (m *Memoize[K, V]) Cached() uint64 {
	return m.results.Len()
}

// Mock has the same API as Memoize but with an implementation that doesn't
// actually save any results.
type Mock[K comparable, V any] struct {
	f func(K) V
}

func NewMock[K comparable, V any](f func(K) V) *Mock[K, V] {
	return &Mock[K, V]{f: f}
}

func (m *Mock[K, V]) Call(x K) V {
	return m.f(x)
}
