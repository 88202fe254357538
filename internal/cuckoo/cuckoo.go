// Package cuckoo implements a small two-table cuckoo hash map guarded by a
// single reader/writer mutex. No third-party cuckoo-hashing library turned
// up anywhere in the retrieved corpus, so this stands in as the benchmark's
// cuckoo-hashing target the way the original's libcuckoo adapter did.
package cuckoo

import "sync"

type entry[K comparable, V any] struct {
	key    K
	val    V
	filled bool
}

// Map is a two-table cuckoo hash map: every key lives in exactly one of
// two candidate slots (one per table), and a failed insert evicts
// whichever occupant is in the way, displacing it to its other table
// before retrying. Exceeding the eviction budget triggers a full rehash
// into larger tables, mirroring how a production cuckoo map grows itself.
type Map[K comparable, V any] struct {
	mu     sync.RWMutex
	tables [2][]entry[K, V]
	hash   func(K, uint64) uint64
	seeds  [2]uint64
	size   int
}

// New builds an empty Map with nBuckets slots per table. hash(k, seed)
// must be a good hash of k mixed with seed; two different seeds are used
// to compute the two candidate slots for each key.
func New[K comparable, V any](nBuckets int, hash func(K, uint64) uint64) *Map[K, V] {
	if nBuckets < 1 {
		nBuckets = 1
	}
	m := &Map[K, V]{
		hash:  hash,
		seeds: [2]uint64{0x9e3779b97f4a7c15, 0xc2b2ae3d27d4eb4f},
	}
	m.tables[0] = make([]entry[K, V], nBuckets)
	m.tables[1] = make([]entry[K, V], nBuckets)
	return m
}

func (m *Map[K, V]) slot(table int, k K) int {
	n := uint64(len(m.tables[table]))
	return int(m.hash(k, m.seeds[table]) % n)
}

func (m *Map[K, V]) lookupLocked(k K) (int, int, bool) {
	for t := 0; t < 2; t++ {
		i := m.slot(t, k)
		if m.tables[t][i].filled && m.tables[t][i].key == k {
			return t, i, true
		}
	}
	return 0, 0, false
}

func (m *Map[K, V]) Has(k K) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, _, ok := m.lookupLocked(k)
	return ok
}

func (m *Map[K, V]) Get(k K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, i, ok := m.lookupLocked(k)
	if !ok {
		var zero V
		return zero, false
	}
	return m.tables[t][i].val, true
}

func (m *Map[K, V]) Remove(k K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, i, ok := m.lookupLocked(k)
	if !ok {
		return false
	}
	m.tables[t][i] = entry[K, V]{}
	m.size--
	return true
}

// Insert adds k=v if k is not already present; existing keys are left
// untouched, matching InsertUnique semantics elsewhere in this module.
func (m *Map[K, V]) Insert(k K, v V) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, _, ok := m.lookupLocked(k); ok {
		return false
	}
	m.insertLocked(k, v)
	m.size++
	return true
}

const maxEvictions = 64

func (m *Map[K, V]) insertLocked(k K, v V) {
	cur := entry[K, V]{key: k, val: v, filled: true}
	table := 0
	for kick := 0; kick < maxEvictions; kick++ {
		i := m.slot(table, cur.key)
		if !m.tables[table][i].filled {
			m.tables[table][i] = cur
			return
		}
		m.tables[table][i], cur = cur, m.tables[table][i]
		table = 1 - table
	}
	m.rehash()
	m.insertLocked(cur.key, cur.val)
}

func (m *Map[K, V]) rehash() {
	old := m.tables
	n := len(old[0]) * 2
	m.tables[0] = make([]entry[K, V], n)
	m.tables[1] = make([]entry[K, V], n)
	for _, table := range old {
		for _, e := range table {
			if e.filled {
				m.insertLocked(e.key, e.val)
			}
		}
	}
}

func (m *Map[K, V]) Size() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return uint64(m.size)
}
