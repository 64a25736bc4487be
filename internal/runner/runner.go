package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uabench/internal/store"
	"github.com/dmitrymomot/uabench/pkg/cache"
	"github.com/dmitrymomot/uabench/pkg/evaluation"
	"github.com/dmitrymomot/uabench/pkg/logger"
	"github.com/dmitrymomot/uabench/pkg/provider"
)

// Runner runs providers over the stored corpus and evaluates their answers.
type Runner struct {
	store     store.Store
	providers []provider.Provider
	evaluator *evaluation.Evaluator
	log       *slog.Logger
	workers   int

	// known maps user agent hashes to stored IDs.
	known *cache.LRUCache[string, uuid.UUID]
}

// New creates a Runner. Provider names must be unique.
func New(s store.Store, providers []provider.Provider, opts ...Option) (*Runner, error) {
	if s == nil {
		return nil, ErrStoreNil
	}
	if len(providers) == 0 {
		return nil, ErrNoProviders
	}

	names := make(map[string]struct{}, len(providers))
	for _, p := range providers {
		name := p.Info().Name
		if _, ok := names[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateProvider, name)
		}
		names[name] = struct{}{}
	}

	o := &options{
		workers:   runtime.GOMAXPROCS(0),
		cacheSize: 10_000,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.evaluator == nil {
		o.evaluator = evaluation.New()
	}

	return &Runner{
		store:     s,
		providers: providers,
		evaluator: o.evaluator,
		log:       o.logger.With(logger.Component("runner")),
		workers:   o.workers,
		known:     cache.NewLRUCache[string, uuid.UUID](o.cacheSize),
	}, nil
}

// ImportStats counts what an Import did.
type ImportStats struct {
	Added    int `json:"added"`
	Existing int `json:"existing"`
}

// Import registers user agents. Already stored strings are left untouched.
func (r *Runner) Import(ctx context.Context, uas []string, source string) (ImportStats, error) {
	var stats ImportStats
	for _, ua := range uas {
		if err := ctx.Err(); err != nil {
			return stats, errors.Join(ErrImport, err)
		}
		if ua == "" {
			continue
		}

		added := false
		_, err := r.known.GetOrLoad(store.Hash(ua), func(hash string) (uuid.UUID, error) {
			rec, err := r.store.UserAgentByHash(ctx, hash)
			if err == nil {
				return rec.ID, nil
			}
			if !errors.Is(err, store.ErrNotFound) {
				return uuid.Nil, err
			}
			rec, err = r.store.SaveUserAgent(ctx, store.NewUserAgent(ua, source))
			if err != nil {
				return uuid.Nil, err
			}
			added = true
			return rec.ID, nil
		})
		if err != nil {
			return stats, errors.Join(ErrImport, err)
		}
		if added {
			stats.Added++
		} else {
			stats.Existing++
		}
	}

	r.log.InfoContext(ctx, "user agents imported",
		slog.String("source", source),
		slog.Int("added", stats.Added),
		slog.Int("existing", stats.Existing),
	)
	return stats, nil
}

// registerProviders stores every provider and returns their IDs by name.
func (r *Runner) registerProviders(ctx context.Context) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(r.providers))
	for _, p := range r.providers {
		rec, err := r.store.SaveProvider(ctx, p.Info())
		if err != nil {
			return nil, err
		}
		ids[rec.Name] = rec.ID
	}
	return ids, nil
}
