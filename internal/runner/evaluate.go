package runner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/uabench/internal/store"
	"github.com/dmitrymomot/uabench/pkg/evaluation"
	"github.com/dmitrymomot/uabench/pkg/logger"
	"github.com/dmitrymomot/uabench/pkg/provider"
)

// Evaluate stores a pairwise evaluation for every resolved result and column
// and an aggregate evaluation for every user agent and column. Previous
// evaluations are overwritten.
func (r *Runner) Evaluate(ctx context.Context) error {
	start := time.Now()

	providers, err := r.store.Providers(ctx)
	if err != nil {
		return errors.Join(ErrEvaluate, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, p := range providers {
		for _, column := range provider.Columns {
			g.Go(func() error {
				return r.evaluateResults(gctx, p, column)
			})
		}
	}
	for _, column := range provider.Columns {
		g.Go(func() error {
			return r.evaluateUserAgents(gctx, column)
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Join(ErrEvaluate, err)
	}

	r.log.InfoContext(ctx, "evaluation finished",
		logger.Count(len(providers)),
		logger.Duration(time.Since(start)),
	)
	return nil
}

func (r *Runner) evaluateResults(ctx context.Context, p store.ProviderRecord, column provider.Column) error {
	rows, err := r.store.ResultFieldRows(ctx, p.ID, column.Name)
	if err != nil {
		return err
	}

	evals := make([]store.ResultEvaluationRecord, 0, len(rows))
	for _, row := range rows {
		evals = append(evals, store.ResultEvaluationRecord{
			ResultID:         row.ResultID,
			Column:           column.Name,
			Found:            row.Current != "",
			ResultEvaluation: r.evaluator.Result(column.Field, row.Current, evaluation.Split(row.Others)),
		})
	}
	if err := r.store.SaveResultEvaluations(ctx, evals); err != nil {
		return err
	}

	r.log.DebugContext(ctx, "results evaluated",
		logger.Provider(p.Name),
		logger.Field(column.Name),
		logger.Count(len(evals)),
	)
	return nil
}

func (r *Runner) evaluateUserAgents(ctx context.Context, column provider.Column) error {
	rows, err := r.store.UserAgentFieldRows(ctx, column.Name)
	if err != nil {
		return err
	}

	evals := make([]store.UserAgentEvaluationRecord, 0, len(rows))
	for _, row := range rows {
		evals = append(evals, store.UserAgentEvaluationRecord{
			UserAgentID:         row.UserAgentID,
			Column:              column.Name,
			UserAgentEvaluation: r.evaluator.UserAgent(column.Field, evaluation.Split(row.Values)),
		})
	}
	if err := r.store.SaveUserAgentEvaluations(ctx, evals); err != nil {
		return err
	}

	r.log.DebugContext(ctx, "user agents evaluated",
		logger.Field(column.Name),
		logger.Count(len(evals)),
	)
	return nil
}

// UserAgentEvaluations returns the stored aggregates of one user agent.
func (r *Runner) UserAgentEvaluations(ctx context.Context, id uuid.UUID) (store.UserAgent, []store.UserAgentEvaluationRecord, error) {
	ua, err := r.store.UserAgent(ctx, id)
	if err != nil {
		return store.UserAgent{}, nil, err
	}
	evals, err := r.store.UserAgentEvaluations(ctx, id)
	if err != nil {
		return store.UserAgent{}, nil, err
	}
	return ua, evals, nil
}
