package runner

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uabench/internal/store"
	"github.com/dmitrymomot/uabench/pkg/provider"
)

// Summary is the report of a benchmark run.
type Summary struct {
	GeneratedAt time.Time             `json:"generated_at" yaml:"generated_at"`
	UserAgents  int                   `json:"user_agents" yaml:"user_agents"`
	Providers   []ProviderSummary     `json:"providers" yaml:"providers"`
	Columns     []store.UserAgentStat `json:"columns" yaml:"columns"`
}

// ProviderSummary holds one provider's agreement figures per column.
type ProviderSummary struct {
	ID      uuid.UUID          `json:"id" yaml:"-"`
	Name    string             `json:"name" yaml:"name"`
	Package string             `json:"package,omitempty" yaml:"package,omitempty"`
	Version string             `json:"version,omitempty" yaml:"version,omitempty"`
	Columns []store.ResultStat `json:"columns" yaml:"columns"`
}

// Summary builds the report from the stored evaluations. Providers keep their
// registration order and columns follow provider.Columns.
func (r *Runner) Summary(ctx context.Context) (Summary, error) {
	providers, err := r.store.Providers(ctx)
	if err != nil {
		return Summary{}, errors.Join(ErrSummary, err)
	}
	uas, err := r.store.UserAgents(ctx)
	if err != nil {
		return Summary{}, errors.Join(ErrSummary, err)
	}
	resultStats, err := r.store.ResultStats(ctx)
	if err != nil {
		return Summary{}, errors.Join(ErrSummary, err)
	}
	uaStats, err := r.store.UserAgentStats(ctx)
	if err != nil {
		return Summary{}, errors.Join(ErrSummary, err)
	}

	byProvider := make(map[uuid.UUID][]store.ResultStat, len(providers))
	for _, s := range resultStats {
		byProvider[s.ProviderID] = append(byProvider[s.ProviderID], s)
	}

	summary := Summary{
		GeneratedAt: time.Now().UTC(),
		UserAgents:  len(uas),
		Providers:   make([]ProviderSummary, 0, len(providers)),
		Columns:     uaStats,
	}
	for _, p := range providers {
		columns := byProvider[p.ID]
		slices.SortStableFunc(columns, func(a, b store.ResultStat) int {
			return columnIndex(a.Column) - columnIndex(b.Column)
		})
		if columns == nil {
			columns = []store.ResultStat{}
		}
		summary.Providers = append(summary.Providers, ProviderSummary{
			ID:      p.ID,
			Name:    p.Name,
			Package: p.Package,
			Version: p.Version,
			Columns: columns,
		})
	}
	slices.SortStableFunc(summary.Columns, func(a, b store.UserAgentStat) int {
		return columnIndex(a.Column) - columnIndex(b.Column)
	})
	return summary, nil
}

func columnIndex(name string) int {
	return slices.IndexFunc(provider.Columns, func(c provider.Column) bool { return c.Name == name })
}

// Providers lists the registered providers in registration order.
func (r *Runner) Providers(ctx context.Context) ([]store.ProviderRecord, error) {
	return r.store.Providers(ctx)
}
