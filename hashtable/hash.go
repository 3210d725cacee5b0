package hashtable

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/goose-lang/primitive"
	"github.com/zeebo/xxh3"
)

// seed is fixed for the life of the process, so hashes are stable within a
// run but not across runs.
var seed = maphash.MakeSeed()

// hashFor returns the 64-bit hash of key. Keys that are == hash identically.
//
// Strings and integers are hashed with xxh3 over their bytes. Everything else
// goes through maphash.Comparable, which follows the semantics of ==
// (including +0 == -0 for floats and dynamic types for interfaces).
func hashFor[K comparable](key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return xxh3.HashString(k)
	case int:
		return hashUint64(uint64(k))
	case int8:
		return hashUint64(uint64(k))
	case int16:
		return hashUint64(uint64(k))
	case int32:
		return hashUint64(uint64(k))
	case int64:
		return hashUint64(uint64(k))
	case uint:
		return hashUint64(uint64(k))
	case uint8:
		return hashUint64(uint64(k))
	case uint16:
		return hashUint64(uint64(k))
	case uint32:
		return hashUint64(uint64(k))
	case uint64:
		return hashUint64(k)
	case uintptr:
		return hashUint64(uint64(k))
	}
	return maphash.Comparable(seed, key)
}

func hashUint64(x uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], x)
	return xxh3.Hash(b[:])
}

func bucketIdx(h uint64, numBuckets uint64) uint64 {
	primitive.Assert(numBuckets > 0)
	return h % numBuckets
}
