package repository

import (
	"time"

	"github.com/okian/studytrack/pkg/logger"
)

// Option applies a configuration option to the Memory store.
type Option func(*Memory)

// WithMetricsUpdateInterval sets the interval for background metrics updates.
func WithMetricsUpdateInterval(interval time.Duration) Option {
	return func(s *Memory) {
		if interval > 0 {
			s.metricsUpdateInterval = interval
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Memory) {
		if l != nil {
			s.log = l
		}
	}
}
