package collist

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// variants lists every Set[int] constructor this package exports; each
// contract test below runs once per variant so a regression in any one
// synchronization strategy fails independently of the others.
func variants() map[string]func() Set[int] {
	eq := EqualValues[int]()
	return map[string]func() Set[int]{
		"sequential":  func() Set[int] { return NewSequential(eq) },
		"coarse":      func() Set[int] { return NewCoarse(eq) },
		"fine":        func() Set[int] { return NewFineGrained(eq) },
		"rwspin":      func() Set[int] { return NewRWSpin(eq) },
		"lockfree":    func() Set[int] { return NewLockFree(eq) },
	}
}

func TestInsertUniqueRejectsDuplicate(t *testing.T) {
	for name, mk := range variants() {
		t.Run(name, func(t *testing.T) {
			s := mk()
			require.True(t, s.InsertUnique(1))
			require.False(t, s.InsertUnique(1))
			assert.Equal(t, uint64(1), s.Size())
		})
	}
}

func TestInsertAllowsDuplicate(t *testing.T) {
	for name, mk := range variants() {
		t.Run(name, func(t *testing.T) {
			s := mk()
			require.True(t, s.Insert(1))
			require.True(t, s.Insert(1))
			assert.Equal(t, uint64(2), s.Size())
		})
	}
}

func TestRemoveMissingReportsFalse(t *testing.T) {
	for name, mk := range variants() {
		t.Run(name, func(t *testing.T) {
			s := mk()
			assert.False(t, s.Remove(42))
			s.Insert(1)
			assert.False(t, s.Remove(2))
			assert.True(t, s.Remove(1))
			assert.True(t, s.Empty())
		})
	}
}

func TestContainsAndFind(t *testing.T) {
	for name, mk := range variants() {
		t.Run(name, func(t *testing.T) {
			s := mk()
			s.InsertUnique(7)
			assert.True(t, s.Contains(7))
			v, ok := s.Find(7)
			require.True(t, ok)
			assert.Equal(t, 7, v)
			assert.False(t, s.Contains(8))
		})
	}
}

func TestConcurrentInsertUniqueConvergesToSetSemantics(t *testing.T) {
	for name, mk := range variants() {
		if name == "sequential" {
			continue // unsynchronized baseline, not safe for concurrent use
		}
		t.Run(name, func(t *testing.T) {
			s := mk()
			const goroutines = 8
			const perGoroutine = 50
			var wg sync.WaitGroup
			for g := 0; g < goroutines; g++ {
				wg.Add(1)
				go func(g int) {
					defer wg.Done()
					for i := 0; i < perGoroutine; i++ {
						s.InsertUnique(i) // every goroutine races on the same key space
					}
				}(g)
			}
			wg.Wait()
			assert.Equal(t, uint64(perGoroutine), s.Size())
			for i := 0; i < perGoroutine; i++ {
				assert.True(t, s.Contains(i))
			}
		})
	}
}

func TestEqualIgnoresUnrelatedLists(t *testing.T) {
	eq := EqualValues[int]()
	a := NewCoarse(eq)
	b := NewCoarse(eq)
	a.InsertUnique(1)
	a.InsertUnique(2)
	b.InsertUnique(1)
	b.InsertUnique(2)
	assert.True(t, a.Equal(b))
	b.InsertUnique(3)
	assert.False(t, a.Equal(b))
}
