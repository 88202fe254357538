// Package epoch gives a lock-free data structure a way to know when no
// goroutine is mid-traversal, the same role hazard pointers play in the
// original: here the garbage collector already owns reclamation safety, so
// the only thing left to track is "is anyone still looking," which a
// Guard answers with a single active-goroutine counter.
package epoch

import (
	"runtime"
	"sync/atomic"
)

// Guard counts goroutines currently pinned inside a traversal.
type Guard struct {
	active atomic.Int64
}

// Pin marks the calling goroutine as active and returns a function that
// must be called exactly once to unmark it.
func (g *Guard) Pin() func() {
	g.active.Add(1)
	done := false
	return func() {
		if done {
			return
		}
		done = true
		g.active.Add(-1)
	}
}

// Quiesce blocks until no goroutine is pinned. Callers must ensure no new
// Pin can start concurrently, or this may never return.
func (g *Guard) Quiesce() {
	for g.active.Load() != 0 {
		runtime.Gosched()
	}
}
