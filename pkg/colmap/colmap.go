// Package colmap implements a bucket-array hash map whose buckets are any
// collist.Set, so the map inherits whichever synchronization strategy its
// caller built the buckets with.
package colmap

import (
	"sync/atomic"

	"github.com/oslab-cc/collex/pkg/collist"
)

// Map is the contract the hash map and its external-library adapters
// (pkg/adapters) both satisfy.
type Map[K comparable, V any] interface {
	Insert(k K, v V) bool
	Remove(k K) bool
	Has(k K) bool
	Get(k K) V
	GetOrZero(k K) (V, bool)
	Size() uint64
}

// Elem is one bucket entry. Two elements are equal if their keys are
// equal; Val never participates in comparison, so a bucket list's Eq can
// look a key up regardless of what value it was last stored with.
type Elem[K comparable, V any] struct {
	Key K
	Val V
}

// ElemEq returns the Eq used by every bucket in a HashMap[K, V].
func ElemEq[K comparable, V any]() collist.Eq[Elem[K, V]] {
	return func(a, b Elem[K, V]) bool { return a.Key == b.Key }
}

// BucketFactory builds one empty bucket list. Passing collist.NewCoarse,
// collist.NewFineGrained, collist.NewRWSpin or collist.NewLockFree (each
// partially applied with ElemEq[K, V]()) selects the map's synchronization
// strategy.
type BucketFactory[K comparable, V any] func() collist.Set[Elem[K, V]]

// HashMap is the bucket-array hash map (fixed bucket count, no resize).
type HashMap[K comparable, V any] struct {
	hash    func(K) uint64
	buckets []collist.Set[Elem[K, V]]
	size    atomic.Uint64
}

// New builds a HashMap with nBuckets buckets, each produced by factory.
// hash maps a key to a bucket index candidate; it need not be uniform or
// even injective, since hash % nBuckets only selects which list to search.
func New[K comparable, V any](nBuckets int, hash func(K) uint64, factory BucketFactory[K, V]) *HashMap[K, V] {
	if nBuckets < 1 {
		nBuckets = 1
	}
	buckets := make([]collist.Set[Elem[K, V]], nBuckets)
	for i := range buckets {
		buckets[i] = factory()
	}
	return &HashMap[K, V]{hash: hash, buckets: buckets}
}

func (m *HashMap[K, V]) bucket(k K) collist.Set[Elem[K, V]] {
	idx := m.hash(k) % uint64(len(m.buckets))
	return m.buckets[idx]
}

// Insert adds k=v only if k is not already present.
func (m *HashMap[K, V]) Insert(k K, v V) bool {
	if m.bucket(k).InsertUnique(Elem[K, V]{Key: k, Val: v}) {
		m.size.Add(1)
		return true
	}
	return false
}

func (m *HashMap[K, V]) Remove(k K) bool {
	if m.bucket(k).Remove(Elem[K, V]{Key: k}) {
		m.size.Add(^uint64(0))
		return true
	}
	return false
}

func (m *HashMap[K, V]) Has(k K) bool {
	return m.bucket(k).Contains(Elem[K, V]{Key: k})
}

// Get mirrors the original's operator[]: a miss inserts a default-valued
// entry as a side effect and returns the zero value. GetOrZero is the
// non-mutating alternative for callers that do not want that side effect.
func (m *HashMap[K, V]) Get(k K) V {
	if e, ok := m.bucket(k).Find(Elem[K, V]{Key: k}); ok {
		return e.Val
	}
	var zero V
	if m.bucket(k).InsertUnique(Elem[K, V]{Key: k, Val: zero}) {
		m.size.Add(1)
	}
	return zero
}

// GetOrZero looks k up without inserting anything on a miss.
func (m *HashMap[K, V]) GetOrZero(k K) (V, bool) {
	e, ok := m.bucket(k).Find(Elem[K, V]{Key: k})
	return e.Val, ok
}

func (m *HashMap[K, V]) Size() uint64 { return m.size.Load() }
