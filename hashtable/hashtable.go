// Package hashtable implements a hash table with a fixed number of buckets
// and separate chaining.
//
// The table never resizes and entries are never removed. A Table is not safe
// for concurrent use; callers that share one must synchronize access
// themselves.
package hashtable

import "github.com/goose-lang/std"

// DefaultCapacity is the number of buckets allocated by New.
const DefaultCapacity = 16

// A Table maps keys to values. It must be created with New; the zero value
// has no buckets.
type Table[K comparable, V any] struct {
	buckets []*bucket[K, V]
	count   uint64
}

func newBucket[K comparable, V any]() *bucket[K, V] {
	// NOTE: an empty bucket is a nil chain
	var head *entry[K, V]
	return &bucket[K, V]{head: head}
}

func createBuckets[K comparable, V any](size uint64) []*bucket[K, V] {
	var buckets = make([]*bucket[K, V], 0, size)
	for i := uint64(0); i < size; i++ {
		buckets = append(buckets, newBucket[K, V]())
	}
	return buckets
}

// New returns an empty table with DefaultCapacity buckets.
func New[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{
		buckets: createBuckets[K, V](DefaultCapacity),
		count:   0,
	}
}

func (t *Table[K, V]) bucketFor(key K) *bucket[K, V] {
	return t.buckets[bucketIdx(hashFor(key), t.NumBuckets())]
}

// Insert associates value with key. If key is already present its entry is
// replaced and Len does not change.
func (t *Table[K, V]) Insert(key K, value V) {
	if t.bucketFor(key).store(key, value) {
		t.count = std.SumAssumeNoOverflow(t.count, 1)
	}
}

// Get returns the value stored for key. The boolean is false if key was never
// inserted.
func (t *Table[K, V]) Get(key K) (V, bool) {
	e := t.bucketFor(key).find(key)
	if e == nil {
		var zero V
		return zero, false
	}
	return e.value, true
}

// MustGet is like Get but panics if key is not present.
func (t *Table[K, V]) MustGet(key K) V {
	v, ok := t.Get(key)
	if !ok {
		panic("entry not found")
	}
	return v
}

// Len returns the number of distinct keys in the table.
func (t *Table[K, V]) Len() uint64 {
	return t.count
}

// NumBuckets returns the fixed number of buckets.
func (t *Table[K, V]) NumBuckets() uint64 {
	return uint64(len(t.buckets))
}
