package runner

import (
	"log/slog"

	"github.com/dmitrymomot/uabench/pkg/evaluation"
)

type options struct {
	workers   int
	cacheSize int
	evaluator *evaluation.Evaluator
	logger    *slog.Logger
}

// Option configures a Runner.
type Option func(*options)

// WithWorkers bounds how many user agents are parsed, and how many columns
// are evaluated, at the same time. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithCacheSize sets how many user agent hashes Import remembers.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

func WithEvaluator(e *evaluation.Evaluator) Option {
	return func(o *options) {
		if e != nil {
			o.evaluator = e
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
