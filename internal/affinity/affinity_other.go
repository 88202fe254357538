//go:build !linux

package affinity

import "go.uber.org/zap"

func pin(core int, log *zap.Logger) error {
	if log != nil {
		log.Warn("cpu affinity pinning is not supported on this platform; continuing without it")
	}
	return nil
}
