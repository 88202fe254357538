package collist

import "sync/atomic"

var idCounter uint64

// nextID hands out a process-wide unique, monotonically increasing id used
// to pick a deadlock-free lock order when an Equal method must hold two
// distinct lists' locks at once.
func nextID() uint64 {
	return atomic.AddUint64(&idCounter, 1)
}
