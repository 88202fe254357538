// Package affinity pins the calling OS thread to a specific CPU core, the
// Go-native equivalent of the original's pthread_setaffinity_np helper.
package affinity

import (
	"runtime"

	"go.uber.org/zap"
)

// PinCurrentThreadToCore locks the calling goroutine to its current OS
// thread and attempts to pin that thread to core id mod the number of
// available CPUs. Platforms without a pinning syscall log a warning
// through log and return nil rather than fail the caller.
func PinCurrentThreadToCore(id int, log *zap.Logger) error {
	runtime.LockOSThread()
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	return pin(id%n, log)
}
