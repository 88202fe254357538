// Package adapters wraps external or internal concurrent maps behind the
// colmap.Map contract so the benchmark harness can drive them exactly like
// the bucket-array HashMap.
package adapters

import (
	"github.com/oslab-cc/collex/internal/cuckoo"
)

// CuckooMap satisfies colmap.Map[K, V] over internal/cuckoo.Map.
type CuckooMap[K comparable, V any] struct {
	m *cuckoo.Map[K, V]
}

// NewCuckooMap builds a CuckooMap with nBuckets slots per cuckoo table.
func NewCuckooMap[K comparable, V any](nBuckets int, hash func(K, uint64) uint64) *CuckooMap[K, V] {
	return &CuckooMap[K, V]{m: cuckoo.New[K, V](nBuckets, hash)}
}

func (a *CuckooMap[K, V]) Insert(k K, v V) bool { return a.m.Insert(k, v) }
func (a *CuckooMap[K, V]) Remove(k K) bool      { return a.m.Remove(k) }
func (a *CuckooMap[K, V]) Has(k K) bool         { return a.m.Has(k) }

func (a *CuckooMap[K, V]) Get(k K) V {
	if v, ok := a.m.Get(k); ok {
		return v
	}
	var zero V
	a.m.Insert(k, zero)
	return zero
}

func (a *CuckooMap[K, V]) GetOrZero(k K) (V, bool) { return a.m.Get(k) }
func (a *CuckooMap[K, V]) Size() uint64            { return a.m.Size() }
