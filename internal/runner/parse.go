package runner

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/uabench/internal/store"
	"github.com/dmitrymomot/uabench/pkg/async"
	"github.com/dmitrymomot/uabench/pkg/logger"
	"github.com/dmitrymomot/uabench/pkg/provider"
)

// ParseStats counts the outcomes of a parse run.
type ParseStats struct {
	UserAgents int           `json:"user_agents"`
	Resolved   int           `json:"resolved"`
	Unresolved int           `json:"unresolved"`
	Failed     int           `json:"failed"`
	Elapsed    time.Duration `json:"elapsed"`
}

type outcome struct {
	providerID uuid.UUID
	name       string
	result     provider.Result
	err        error
}

// Parse runs every provider over every stored user agent and stores one
// result per pair. A provider that does not recognise a user agent produces
// an unresolved result; any other provider error is logged and that pair is
// left without a result.
func (r *Runner) Parse(ctx context.Context) (ParseStats, error) {
	start := time.Now()

	ids, err := r.registerProviders(ctx)
	if err != nil {
		return ParseStats{}, errors.Join(ErrParse, err)
	}
	uas, err := r.store.UserAgents(ctx)
	if err != nil {
		return ParseStats{}, errors.Join(ErrParse, err)
	}

	var resolved, unresolved, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, ua := range uas {
		g.Go(func() error {
			outcomes, err := r.parseUserAgent(gctx, ua.String, ids)
			if err != nil {
				return err
			}

			records := make([]store.ResultRecord, 0, len(outcomes))
			for _, o := range outcomes {
				switch {
				case o.err == nil:
					resolved.Add(1)
					records = append(records, store.ResultRecord{
						ProviderID:  o.providerID,
						UserAgentID: ua.ID,
						Resolved:    true,
						Result:      o.result,
					})
				case errors.Is(o.err, provider.ErrNoResult):
					unresolved.Add(1)
					records = append(records, store.ResultRecord{
						ProviderID:  o.providerID,
						UserAgentID: ua.ID,
					})
				default:
					failed.Add(1)
					r.log.WarnContext(gctx, "provider failed",
						logger.Provider(o.name),
						logger.UserAgentID(ua.ID),
						logger.Error(o.err),
					)
				}
			}
			return r.store.SaveResults(gctx, records)
		})
	}
	if err := g.Wait(); err != nil {
		return ParseStats{}, errors.Join(ErrParse, err)
	}

	stats := ParseStats{
		UserAgents: len(uas),
		Resolved:   int(resolved.Load()),
		Unresolved: int(unresolved.Load()),
		Failed:     int(failed.Load()),
		Elapsed:    time.Since(start),
	}
	r.log.InfoContext(ctx, "parse run finished",
		logger.Count(stats.UserAgents),
		slog.Int("resolved", stats.Resolved),
		slog.Int("unresolved", stats.Unresolved),
		slog.Int("failed", stats.Failed),
		logger.Duration(stats.Elapsed),
	)
	return stats, nil
}

// parseUserAgent asks all providers about ua concurrently. Provider errors
// are carried in the outcomes; only cancellation is returned as an error.
func (r *Runner) parseUserAgent(ctx context.Context, ua string, ids map[string]uuid.UUID) ([]outcome, error) {
	futures := make([]*async.Future[outcome], 0, len(r.providers))
	for _, p := range r.providers {
		name := p.Info().Name
		futures = append(futures, async.Async(ctx, p, func(ctx context.Context, p provider.Provider) (outcome, error) {
			res, err := provider.Measure(ctx, p, ua)
			return outcome{providerID: ids[name], name: name, result: res, err: err}, nil
		}))
	}
	return async.WaitAll(ctx, futures...)
}
