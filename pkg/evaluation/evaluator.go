package evaluation

import (
	"github.com/dmitrymomot/uabench/pkg/harmonize"
)

// Evaluator computes evaluations using a harmonization registry.
// It holds no per-call state and is safe for concurrent use.
type Evaluator struct {
	registry *harmonize.Registry
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithRegistry replaces the default harmonization registry.
// Nil registries are ignored.
func WithRegistry(r *harmonize.Registry) Option {
	return func(e *Evaluator) {
		if r != nil {
			e.registry = r
		}
	}
}

// New creates an Evaluator backed by the default harmonization rules.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	if e.registry == nil {
		e.registry = harmonize.Default()
	}
	return e
}

// Result evaluates one parser's value against the values of all other parsers.
func (e *Evaluator) Result(field harmonize.Field, current string, others []string) ResultEvaluation {
	h := e.registry.For(field)
	return ResultEvaluation{
		SameResultCount:           countEqual(others, current),
		HarmonizedSameResultCount: countEqual(h.Values(others), h.Value(current)),
	}
}

// UserAgent summarizes the values of all parsers for one field of one user agent.
func (e *Evaluator) UserAgent(field harmonize.Field, values []string) UserAgentEvaluation {
	return newAggregate(e.registry.For(field), values).evaluate()
}

var defaultEvaluator = New()

// EvaluateResult runs Result with the default rules.
func EvaluateResult(field harmonize.Field, current string, others []string) ResultEvaluation {
	return defaultEvaluator.Result(field, current, others)
}

// EvaluateUserAgent runs UserAgent with the default rules.
func EvaluateUserAgent(field harmonize.Field, values []string) UserAgentEvaluation {
	return defaultEvaluator.UserAgent(field, values)
}

func countEqual(values []string, target string) int {
	n := 0
	for _, v := range values {
		if v == target {
			n++
		}
	}
	return n
}
