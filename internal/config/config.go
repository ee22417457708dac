// Package config carries the construction-time options for a Matcher:
// cache size, the logger used for its diagnostic log sites (cache
// eviction, malformed-header rejection), and the metrics recorder used to
// instrument Select calls.
package config

import (
	"github.com/trpc-ecosystem/negotiate/log"
	"github.com/trpc-ecosystem/negotiate/metrics"
)

// Options holds a Matcher's construction-time configuration.
type Options struct {
	CacheSize int
	Logger    log.Logger
	Metrics   metrics.Recorder
}

// Default returns the zero-configuration Options: the default cache bound
// (applied by the cache package when CacheSize <= 0), a no-op logger, and a
// no-op metrics recorder.
func Default() Options {
	return Options{Logger: log.Nop(), Metrics: metrics.NopRecorder{}}
}
