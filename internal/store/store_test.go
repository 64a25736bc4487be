package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uabench/internal/store"
	"github.com/dmitrymomot/uabench/pkg/evaluation"
	"github.com/dmitrymomot/uabench/pkg/harmonize"
	"github.com/dmitrymomot/uabench/pkg/provider"
)

func browser(name string) provider.Result {
	return provider.Result{Browser: provider.Browser{Name: name}}
}

// runStoreContract exercises the behavior every Store implementation shares.
func runStoreContract(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.SaveProvider(ctx, provider.Info{Name: " "})
	require.ErrorIs(t, err, store.ErrEmptyProviderName)

	pa, err := s.SaveProvider(ctx, provider.Info{Name: "a"})
	require.NoError(t, err)
	pb, err := s.SaveProvider(ctx, provider.Info{Name: "b"})
	require.NoError(t, err)
	pc, err := s.SaveProvider(ctx, provider.Info{Name: "c", Detects: provider.Capabilities{Browser: true}})
	require.NoError(t, err)

	again, err := s.SaveProvider(ctx, provider.Info{Name: "a", Version: "2.0"})
	require.NoError(t, err)
	assert.Equal(t, pa.ID, again.ID)

	providers, err := s.Providers(ctx)
	require.NoError(t, err)
	require.Len(t, providers, 3)
	assert.Equal(t, "2.0", providers[0].Version)
	assert.True(t, providers[2].Detects.Browser)

	_, err = s.SaveUserAgent(ctx, store.NewUserAgent("", "test"))
	require.ErrorIs(t, err, store.ErrEmptyUserAgent)

	ua1, err := s.SaveUserAgent(ctx, store.NewUserAgent("ua-one", "test"))
	require.NoError(t, err)
	ua2, err := s.SaveUserAgent(ctx, store.NewUserAgent("ua-two", "test"))
	require.NoError(t, err)
	ua3, err := s.SaveUserAgent(ctx, store.NewUserAgent("ua-three", "test"))
	require.NoError(t, err)

	dup, err := s.SaveUserAgent(ctx, store.NewUserAgent("ua-one", "other"))
	require.NoError(t, err)
	assert.Equal(t, ua1.ID, dup.ID)
	assert.Equal(t, "test", dup.Source)

	byHash, err := s.UserAgentByHash(ctx, store.Hash("ua-two"))
	require.NoError(t, err)
	assert.Equal(t, ua2.ID, byHash.ID)

	_, err = s.UserAgentByHash(ctx, store.Hash("missing"))
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.UserAgent(ctx, uuid.New())
	require.ErrorIs(t, err, store.ErrNotFound)

	uas, err := s.UserAgents(ctx)
	require.NoError(t, err)
	assert.Len(t, uas, 3)

	require.NoError(t, s.SaveResults(ctx, []store.ResultRecord{
		{ProviderID: pa.ID, UserAgentID: ua1.ID, Resolved: true, Result: browser("Chromium")},
		{ProviderID: pb.ID, UserAgentID: ua1.ID, Resolved: true, Result: browser("Chrome Mobile")},
		{ProviderID: pc.ID, UserAgentID: ua1.ID, Resolved: true, Result: browser("Firefox")},
		{ProviderID: pa.ID, UserAgentID: ua2.ID, Resolved: true},
		{ProviderID: pb.ID, UserAgentID: ua2.ID, Resolved: false, Result: browser("ignored")},
	}))
	// Upsert replaces the earlier answer of provider a.
	require.NoError(t, s.SaveResults(ctx, []store.ResultRecord{
		{ProviderID: pa.ID, UserAgentID: ua1.ID, Resolved: true, Result: browser("Chrome")},
	}))

	t.Run("result field rows", func(t *testing.T) {
		rows, err := s.ResultFieldRows(ctx, pa.ID, provider.ColumnBrowserName)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		byCurrent := map[string]store.ResultFieldRow{}
		for _, r := range rows {
			byCurrent[r.Current] = r
		}
		require.Contains(t, byCurrent, "Chrome")
		assert.Equal(t, []string{"Chrome Mobile", "Firefox"}, evaluation.Split(byCurrent["Chrome"].Others))

		require.Contains(t, byCurrent, "")
		assert.Nil(t, byCurrent[""].Others, "unresolved results never contribute")

		rows, err = s.ResultFieldRows(ctx, pb.ID, provider.ColumnBrowserName)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, []string{"Chrome", "Firefox"}, evaluation.Split(rows[0].Others))

		_, err = s.ResultFieldRows(ctx, pa.ID, "screen_size")
		require.ErrorIs(t, err, store.ErrUnknownColumn)
		_, err = s.ResultFieldRows(ctx, uuid.New(), provider.ColumnBrowserName)
		require.ErrorIs(t, err, store.ErrUnknownProvider)
	})

	t.Run("user agent field rows", func(t *testing.T) {
		rows, err := s.UserAgentFieldRows(ctx, provider.ColumnBrowserName)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		byID := map[uuid.UUID]*string{}
		for _, r := range rows {
			byID[r.UserAgentID] = r.Values
		}
		assert.Equal(t, []string{"Chrome", "Chrome Mobile", "Firefox"}, evaluation.Split(byID[ua1.ID]))
		assert.Equal(t, []string{""}, evaluation.Split(byID[ua2.ID]))
		assert.Nil(t, byID[ua3.ID])

		_, err = s.UserAgentFieldRows(ctx, "screen_size")
		require.ErrorIs(t, err, store.ErrUnknownColumn)
	})

	t.Run("evaluations and stats", func(t *testing.T) {
		rows, err := s.ResultFieldRows(ctx, pa.ID, provider.ColumnBrowserName)
		require.NoError(t, err)

		evals := make([]store.ResultEvaluationRecord, 0, len(rows))
		for _, r := range rows {
			evals = append(evals, store.ResultEvaluationRecord{
				ResultID:         r.ResultID,
				Column:           provider.ColumnBrowserName,
				Found:            r.Current != "",
				ResultEvaluation: evaluation.EvaluateResult(harmonize.BrowserName, r.Current, evaluation.Split(r.Others)),
			})
		}
		require.NoError(t, s.SaveResultEvaluations(ctx, evals))

		stats, err := s.ResultStats(ctx)
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, store.ResultStat{
			ProviderID:       pa.ID,
			Provider:         "a",
			Column:           provider.ColumnBrowserName,
			Results:          2,
			Found:            1,
			Agreed:           0,
			HarmonizedAgreed: 1,
		}, stats[0])

		uaRows, err := s.UserAgentFieldRows(ctx, provider.ColumnBrowserName)
		require.NoError(t, err)
		uaEvals := make([]store.UserAgentEvaluationRecord, 0, len(uaRows))
		for _, r := range uaRows {
			uaEvals = append(uaEvals, store.UserAgentEvaluationRecord{
				UserAgentID:         r.UserAgentID,
				Column:              provider.ColumnBrowserName,
				UserAgentEvaluation: evaluation.EvaluateUserAgent(harmonize.BrowserName, evaluation.Split(r.Values)),
			})
		}
		require.NoError(t, s.SaveUserAgentEvaluations(ctx, uaEvals))

		got, err := s.UserAgentEvaluations(ctx, ua1.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].FoundCount)
		assert.Equal(t, 2, got[0].HarmonizedMaxSameResultCount)
		assert.Equal(t, []string{"Chrome", "Chrome Mobile", "Firefox"}, got[0].Values)
		assert.Equal(t, []string{"Chrome", "Firefox"}, got[0].UniqueHarmonizedValues)

		empty, err := s.UserAgentEvaluations(ctx, ua3.ID)
		require.NoError(t, err)
		require.Len(t, empty, 1)
		assert.Zero(t, empty[0].FoundCount)
		assert.Empty(t, empty[0].Values)

		_, err = s.UserAgentEvaluations(ctx, uuid.New())
		require.ErrorIs(t, err, store.ErrNotFound)

		uaStats, err := s.UserAgentStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, []store.UserAgentStat{{
			Column:     provider.ColumnBrowserName,
			UserAgents: 3,
			Unanimous:  1,
			Disputed:   1,
		}}, uaStats)
	})
}

func TestMemory(t *testing.T) {
	t.Parallel()
	runStoreContract(t, store.NewMemory())
}

func TestMemoryRejectsUnknownReferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := store.NewMemory()

	p, err := s.SaveProvider(ctx, provider.Info{Name: "a"})
	require.NoError(t, err)

	err = s.SaveResults(ctx, []store.ResultRecord{{ProviderID: p.ID, UserAgentID: uuid.New(), Resolved: true}})
	require.ErrorIs(t, err, store.ErrUnknownUserAgent)

	ua, err := s.SaveUserAgent(ctx, store.NewUserAgent("ua", ""))
	require.NoError(t, err)
	err = s.SaveResults(ctx, []store.ResultRecord{{ProviderID: uuid.New(), UserAgentID: ua.ID}})
	require.ErrorIs(t, err, store.ErrUnknownProvider)

	err = s.SaveUserAgentEvaluations(ctx, []store.UserAgentEvaluationRecord{{UserAgentID: uuid.New(), Column: provider.ColumnOSName}})
	require.ErrorIs(t, err, store.ErrUnknownUserAgent)
}

func TestHash(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", store.Hash("abc"))
	ua := store.NewUserAgent("abc", "corpus")
	assert.Equal(t, store.Hash("abc"), ua.Hash)
	assert.NotEqual(t, uuid.Nil, ua.ID)
}
