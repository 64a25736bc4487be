package runner

import "errors"

var (
	ErrStoreNil          = errors.New("runner: store is nil")
	ErrNoProviders       = errors.New("runner: no providers")
	ErrDuplicateProvider = errors.New("runner: duplicate provider name")
	ErrReadCorpus        = errors.New("runner: failed to read corpus")
	ErrImport            = errors.New("runner: failed to import user agents")
	ErrParse             = errors.New("runner: parse run failed")
	ErrEvaluate          = errors.New("runner: evaluation failed")
	ErrSummary           = errors.New("runner: failed to build summary")
)
