package hashtable

// An entry is one key/value pair in a bucket's chain.
type entry[K comparable, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// A bucket is a singly linked chain of entries whose keys hash to the same
// slot. New entries go at the front, so the chain is most-recent-first.
//
// A bucket is not safe for concurrent use.
type bucket[K comparable, V any] struct {
	head *entry[K, V]
}

// find returns the entry with the given key, or nil.
func (b *bucket[K, V]) find(key K) *entry[K, V] {
	var e = b.head
	for {
		if e == nil {
			break
		}
		if e.key == key {
			break
		}
		e = e.next
	}
	return e
}

// store overwrites the entry for key if there is one and otherwise prepends a
// new entry. It reports whether a new entry was added.
func (b *bucket[K, V]) store(key K, value V) bool {
	e := b.find(key)
	if e != nil {
		// replace the whole pair, not just the value
		e.key = key
		e.value = value
		return false
	}
	b.head = &entry[K, V]{key: key, value: value, next: b.head}
	return true
}
