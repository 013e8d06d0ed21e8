package rankgo

import (
	"github.com/hupe1980/rankgo/cuckoo"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	initialCapacity  int
}

// Option configures Registry constructor behavior.
type Option func(*options)

// WithLogger configures the logger used for structural events.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures the metrics collector invoked after each
// registry operation.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metricsCollector = collector
	}
}

// WithInitialCapacity configures the initial per-table capacity of the
// identifier indexes. The default (cuckoo.DefaultCapacity) is sized so that
// typical workloads never resize; smaller values are mainly useful in tests.
func WithInitialCapacity(capacity int) Option {
	return func(o *options) {
		if capacity < 1 {
			capacity = cuckoo.DefaultCapacity
		}
		o.initialCapacity = capacity
	}
}
