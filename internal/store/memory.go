package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uabench/pkg/evaluation"
	"github.com/dmitrymomot/uabench/pkg/provider"
)

type resultKey struct {
	provider  uuid.UUID
	userAgent uuid.UUID
}

type evalKey struct {
	id     uuid.UUID
	column string
}

// Memory is an in-process Store. Joined values are ordered by provider
// registration order. It is safe for concurrent use.
type Memory struct {
	mu sync.RWMutex

	providers      []ProviderRecord
	providerByName map[string]int

	userAgents []UserAgent
	uaByHash   map[string]int
	uaByID     map[uuid.UUID]int

	results       map[resultKey]ResultRecord
	resultEvals   map[evalKey]ResultEvaluationRecord
	userAgentEval map[evalKey]UserAgentEvaluationRecord

	now func() time.Time
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		providerByName: make(map[string]int),
		uaByHash:       make(map[string]int),
		uaByID:         make(map[uuid.UUID]int),
		results:        make(map[resultKey]ResultRecord),
		resultEvals:    make(map[evalKey]ResultEvaluationRecord),
		userAgentEval:  make(map[evalKey]UserAgentEvaluationRecord),
		now:            time.Now,
	}
}

func (m *Memory) SaveProvider(_ context.Context, info provider.Info) (ProviderRecord, error) {
	if strings.TrimSpace(info.Name) == "" {
		return ProviderRecord{}, ErrEmptyProviderName
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if i, ok := m.providerByName[info.Name]; ok {
		m.providers[i].Info = info
		return m.providers[i], nil
	}
	rec := ProviderRecord{ID: uuid.New(), Info: info}
	m.providerByName[info.Name] = len(m.providers)
	m.providers = append(m.providers, rec)
	return rec, nil
}

func (m *Memory) Providers(context.Context) ([]ProviderRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.providers), nil
}

func (m *Memory) UserAgentByHash(_ context.Context, hash string) (UserAgent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.uaByHash[hash]
	if !ok {
		return UserAgent{}, ErrNotFound
	}
	return m.userAgents[i], nil
}

func (m *Memory) SaveUserAgent(_ context.Context, ua UserAgent) (UserAgent, error) {
	if ua.String == "" {
		return UserAgent{}, ErrEmptyUserAgent
	}
	if ua.Hash == "" {
		ua.Hash = Hash(ua.String)
	}
	if ua.ID == uuid.Nil {
		ua.ID = uuid.New()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if i, ok := m.uaByHash[ua.Hash]; ok {
		return m.userAgents[i], nil
	}
	ua.CreatedAt = m.now()
	m.uaByHash[ua.Hash] = len(m.userAgents)
	m.uaByID[ua.ID] = len(m.userAgents)
	m.userAgents = append(m.userAgents, ua)
	return ua, nil
}

func (m *Memory) UserAgent(_ context.Context, id uuid.UUID) (UserAgent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.uaByID[id]
	if !ok {
		return UserAgent{}, ErrNotFound
	}
	return m.userAgents[i], nil
}

func (m *Memory) UserAgents(context.Context) ([]UserAgent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.userAgents), nil
}

func (m *Memory) SaveResults(_ context.Context, results []ResultRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range results {
		if !m.knownProvider(r.ProviderID) {
			return fmt.Errorf("%w: %s", ErrUnknownProvider, r.ProviderID)
		}
		if _, ok := m.uaByID[r.UserAgentID]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownUserAgent, r.UserAgentID)
		}
	}

	for _, r := range results {
		key := resultKey{provider: r.ProviderID, userAgent: r.UserAgentID}
		if prev, ok := m.results[key]; ok {
			r.ID = prev.ID
		} else if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		if !r.Resolved {
			r.Result = provider.Result{}
		}
		m.results[key] = r
	}
	return nil
}

func (m *Memory) ResultFieldRows(_ context.Context, providerID uuid.UUID, column string) ([]ResultFieldRow, error) {
	if _, err := provider.ColumnByName(column); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.knownProvider(providerID) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, providerID)
	}

	rows := make([]ResultFieldRow, 0)
	for _, ua := range m.userAgents {
		current, ok := m.results[resultKey{provider: providerID, userAgent: ua.ID}]
		if !ok || !current.Resolved {
			continue
		}
		others := m.joinedValues(ua.ID, column, providerID)
		rows = append(rows, ResultFieldRow{
			ResultID: current.ID,
			Current:  current.Result.Value(column),
			Others:   others,
		})
	}
	return rows, nil
}

func (m *Memory) UserAgentFieldRows(_ context.Context, column string) ([]UserAgentFieldRow, error) {
	if _, err := provider.ColumnByName(column); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := make([]UserAgentFieldRow, 0, len(m.userAgents))
	for _, ua := range m.userAgents {
		rows = append(rows, UserAgentFieldRow{
			UserAgentID: ua.ID,
			Values:      m.joinedValues(ua.ID, column, uuid.Nil),
		})
	}
	return rows, nil
}

// joinedValues joins the column values of the user agent's resolved results,
// skipping the excluded provider. Must be called with the lock held.
func (m *Memory) joinedValues(userAgentID uuid.UUID, column string, exclude uuid.UUID) *string {
	values := make([]string, 0, len(m.providers))
	for _, p := range m.providers {
		if p.ID == exclude {
			continue
		}
		r, ok := m.results[resultKey{provider: p.ID, userAgent: userAgentID}]
		if !ok || !r.Resolved {
			continue
		}
		values = append(values, r.Result.Value(column))
	}
	return evaluation.Join(values)
}

func (m *Memory) SaveResultEvaluations(_ context.Context, evals []ResultEvaluationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range evals {
		m.resultEvals[evalKey{id: e.ResultID, column: e.Column}] = e
	}
	return nil
}

func (m *Memory) SaveUserAgentEvaluations(_ context.Context, evals []UserAgentEvaluationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range evals {
		if _, ok := m.uaByID[e.UserAgentID]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownUserAgent, e.UserAgentID)
		}
		m.userAgentEval[evalKey{id: e.UserAgentID, column: e.Column}] = e
	}
	return nil
}

func (m *Memory) UserAgentEvaluations(_ context.Context, userAgentID uuid.UUID) ([]UserAgentEvaluationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.uaByID[userAgentID]; !ok {
		return nil, ErrNotFound
	}
	evals := make([]UserAgentEvaluationRecord, 0, len(provider.Columns))
	for _, c := range provider.Columns {
		if e, ok := m.userAgentEval[evalKey{id: userAgentID, column: c.Name}]; ok {
			evals = append(evals, e)
		}
	}
	return evals, nil
}

func (m *Memory) ResultStats(context.Context) ([]ResultStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	resultProvider := make(map[uuid.UUID]uuid.UUID, len(m.results))
	for key, r := range m.results {
		resultProvider[r.ID] = key.provider
	}

	type statKey struct {
		provider uuid.UUID
		column   string
	}
	stats := make(map[statKey]*ResultStat)
	for _, e := range m.resultEvals {
		pid, ok := resultProvider[e.ResultID]
		if !ok {
			continue
		}
		key := statKey{provider: pid, column: e.Column}
		s, ok := stats[key]
		if !ok {
			s = &ResultStat{
				ProviderID: pid,
				Provider:   m.providers[m.providerIndex(pid)].Name,
				Column:     e.Column,
			}
			stats[key] = s
		}
		s.Results++
		if e.Found {
			s.Found++
		}
		if e.SameResultCount > 0 {
			s.Agreed++
		}
		if e.HarmonizedSameResultCount > 0 {
			s.HarmonizedAgreed++
		}
	}

	out := make([]ResultStat, 0, len(stats))
	for _, s := range stats {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b ResultStat) int {
		return cmp.Or(cmp.Compare(a.Provider, b.Provider), cmp.Compare(a.Column, b.Column))
	})
	return out, nil
}

func (m *Memory) UserAgentStats(context.Context) ([]UserAgentStat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make(map[string]*UserAgentStat)
	for _, e := range m.userAgentEval {
		s, ok := stats[e.Column]
		if !ok {
			s = &UserAgentStat{Column: e.Column}
			stats[e.Column] = s
		}
		s.UserAgents++
		switch {
		case e.HarmonizedFoundUnique > 1:
			s.Disputed++
		case e.FoundCount > 0 && e.HarmonizedFoundUnique == 1:
			s.Unanimous++
		}
	}

	out := make([]UserAgentStat, 0, len(stats))
	for _, s := range stats {
		out = append(out, *s)
	}
	slices.SortFunc(out, func(a, b UserAgentStat) int { return cmp.Compare(a.Column, b.Column) })
	return out, nil
}

// Must be called with the lock held.
func (m *Memory) knownProvider(id uuid.UUID) bool {
	return m.providerIndex(id) >= 0
}

// Must be called with the lock held.
func (m *Memory) providerIndex(id uuid.UUID) int {
	return slices.IndexFunc(m.providers, func(p ProviderRecord) bool { return p.ID == id })
}
