// Package obslog builds the zap logger shared by the benchmark CLI and its
// internal packages, the structured-logging library the rest of the
// retrieved corpus reaches for over the standard library's log package.
package obslog

import "go.uber.org/zap"

// New builds a development (human-readable console) logger when pretty
// is true, and a production (JSON) logger otherwise.
func New(pretty bool) *zap.Logger {
	if pretty {
		cfg := zap.NewDevelopmentConfig()
		return zap.Must(cfg.Build())
	}
	cfg := zap.NewProductionConfig()
	return zap.Must(cfg.Build())
}
