//go:build linux

package affinity

import (
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

func pin(core int, log *zap.Logger) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(core)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		if log != nil {
			log.Warn("cpu affinity pin failed", zap.Int("core", core), zap.Error(err))
		}
		return err
	}
	return nil
}
