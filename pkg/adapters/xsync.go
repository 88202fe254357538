package adapters

import "github.com/puzpuzpuz/xsync/v3"

// XsyncMap wraps puzpuzpuz/xsync's sharded MapOf, the ecosystem's closest
// equivalent to the original's TBB concurrent_hash_map adapter: a
// striped/lock-free-ish concurrent map rather than a single shared lock.
type XsyncMap[K comparable, V any] struct {
	m *xsync.MapOf[K, V]
}

// NewXsyncMap builds an XsyncMap pre-sized for roughly sizeHint entries.
func NewXsyncMap[K comparable, V any](sizeHint int) *XsyncMap[K, V] {
	return &XsyncMap[K, V]{m: xsync.NewMapOf[K, V](xsync.WithPresize(sizeHint))}
}

// Insert adds k=v only if k is not already present.
func (a *XsyncMap[K, V]) Insert(k K, v V) bool {
	_, loaded := a.m.LoadOrStore(k, v)
	return !loaded
}

func (a *XsyncMap[K, V]) Remove(k K) bool {
	_, loaded := a.m.LoadAndDelete(k)
	return loaded
}

func (a *XsyncMap[K, V]) Has(k K) bool {
	_, ok := a.m.Load(k)
	return ok
}

// Get mirrors HashMap.Get: a miss stores the zero value and returns it.
func (a *XsyncMap[K, V]) Get(k K) V {
	if v, ok := a.m.Load(k); ok {
		return v
	}
	var zero V
	a.m.LoadOrStore(k, zero)
	return zero
}

func (a *XsyncMap[K, V]) GetOrZero(k K) (V, bool) { return a.m.Load(k) }
func (a *XsyncMap[K, V]) Size() uint64            { return uint64(a.m.Size()) }
