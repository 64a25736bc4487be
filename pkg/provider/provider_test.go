package provider_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uabench/pkg/harmonize"
	"github.com/dmitrymomot/uabench/pkg/provider"
)

type stubProvider struct {
	res provider.Result
	err error
}

func (s stubProvider) Info() provider.Info { return provider.Info{Name: "stub"} }

func (s stubProvider) Parse(context.Context, string) (provider.Result, error) {
	return s.res, s.err
}

func TestMeasure(t *testing.T) {
	t.Parallel()

	t.Run("normalizes versions", func(t *testing.T) {
		t.Parallel()
		p := stubProvider{res: provider.Result{
			Browser: provider.Browser{Name: "Chrome", Version: "91.0"},
			Engine:  provider.Engine{Name: "Blink", Version: "..."},
			OS:      provider.OS{Name: "Windows", Version: "0.0.0"},
		}}
		res, err := provider.Measure(context.Background(), p, "ua")
		require.NoError(t, err)
		assert.Equal(t, "91.0", res.Browser.Version)
		assert.Empty(t, res.Engine.Version)
		assert.Empty(t, res.OS.Version)
		assert.Equal(t, "Windows", res.OS.Name)
	})

	t.Run("no result", func(t *testing.T) {
		t.Parallel()
		res, err := provider.Measure(context.Background(), stubProvider{err: provider.ErrNoResult}, "ua")
		require.ErrorIs(t, err, provider.ErrNoResult)
		assert.Empty(t, res.Browser)
	})

	t.Run("failure is wrapped", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		_, err := provider.Measure(context.Background(), stubProvider{err: boom}, "ua")
		require.ErrorIs(t, err, provider.ErrParseFailed)
		require.ErrorIs(t, err, boom)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := provider.Measure(ctx, stubProvider{}, "ua")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestResultValue(t *testing.T) {
	t.Parallel()

	res := provider.Result{
		Browser: provider.Browser{Name: "Firefox", Version: "89.0"},
		Engine:  provider.Engine{Name: "Gecko", Version: "89.0"},
		OS:      provider.OS{Name: "Linux", Version: "5"},
		Device:  provider.Device{Model: "ThinkPad", Brand: "Lenovo", Type: "desktop"},
		Bot:     provider.Bot{Name: "none", Type: "none"},
	}

	want := map[string]string{
		provider.ColumnBrowserName:    "Firefox",
		provider.ColumnBrowserVersion: "89.0",
		provider.ColumnEngineName:     "Gecko",
		provider.ColumnEngineVersion:  "89.0",
		provider.ColumnOSName:         "Linux",
		provider.ColumnOSVersion:      "5",
		provider.ColumnDeviceModel:    "ThinkPad",
		provider.ColumnDeviceBrand:    "Lenovo",
		provider.ColumnDeviceType:     "desktop",
		provider.ColumnBotName:        "none",
		provider.ColumnBotType:        "none",
	}
	require.Len(t, provider.Columns, len(want))
	for _, col := range provider.Columns {
		assert.Equal(t, want[col.Name], res.Value(col.Name), col.Name)
	}
	assert.Empty(t, res.Value("unknown"))
}

func TestColumnByName(t *testing.T) {
	t.Parallel()

	col, err := provider.ColumnByName(provider.ColumnOSVersion)
	require.NoError(t, err)
	assert.Equal(t, harmonize.Version, col.Field)

	col, err = provider.ColumnByName(provider.ColumnDeviceType)
	require.NoError(t, err)
	assert.Equal(t, harmonize.DeviceType, col.Field)

	_, err = provider.ColumnByName("screen_size")
	require.ErrorIs(t, err, provider.ErrUnknownColumn)

	for _, c := range provider.Columns {
		assert.True(t, c.Field.Valid(), c.Name)
	}
}
