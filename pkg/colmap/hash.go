package colmap

import (
	"fmt"
	"hash/maphash"
)

var seed = maphash.MakeSeed()

// DefaultHash builds a reasonable hash(K) uint64 for any comparable key by
// formatting it and hashing the bytes with hash/maphash. It stands in for
// the original's std::hash<K>; callers with a performance-sensitive key
// type (plain integers, for example) should pass their own hash instead.
func DefaultHash[K comparable]() func(K) uint64 {
	return func(k K) uint64 {
		var h maphash.Hash
		h.SetSeed(seed)
		fmt.Fprintf(&h, "%v", k)
		return h.Sum64()
	}
}

// IdentityHash returns k itself as its own hash, the cheapest possible
// choice for small integer key spaces like the benchmark's synthetic keys.
func IdentityHash() func(uint64) uint64 {
	return func(k uint64) uint64 { return k }
}
