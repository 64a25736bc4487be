package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uabench/internal/runner"
	"github.com/dmitrymomot/uabench/pkg/publish"
)

const referenceFixture = "../../pkg/provider/fixture/testdata/reference.yaml"

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func writeCorpus(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
	return path
}

func memoryConfig(t *testing.T) Config {
	return Config{
		Env:       "test",
		Store:     storeMemory,
		Workers:   2,
		Providers: []string{"native", "mssola"},
		Fixtures:  []string{referenceFixture},
		ReportKey: "summary",
		Publish:   publish.Config{Driver: publish.DriverLocal, Dir: t.TempDir()},
	}
}

func TestBuildProviders(t *testing.T) {
	t.Parallel()

	providers, corpus, err := buildProviders([]string{"native", " mssola ", ""}, []string{referenceFixture})
	require.NoError(t, err)
	require.Len(t, providers, 3)
	assert.Equal(t, "native", providers[0].Info().Name)
	assert.Equal(t, "mssola", providers[1].Info().Name)
	assert.Equal(t, "reference", providers[2].Info().Name)
	assert.Len(t, corpus, 3)

	_, _, err = buildProviders([]string{"uap-go"}, nil)
	require.Error(t, err)

	_, _, err = buildProviders(nil, []string{"missing.yaml"})
	require.Error(t, err)
}

func TestRunAllWithMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	corpus := writeCorpus(t,
		"# sample",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36",
	)

	var out bytes.Buffer
	a, err := newApp(ctx, memoryConfig(t), quiet, &out)
	require.NoError(t, err)
	defer a.close()

	require.NoError(t, a.runAll(ctx, corpus))

	var summary runner.Summary
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &summary))
	assert.Equal(t, 4, summary.UserAgents)
	require.Len(t, summary.Providers, 3)
	assert.Equal(t, "reference", summary.Providers[2].Name)
	assert.NotEmpty(t, summary.Columns)
}

func TestExport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := memoryConfig(t)

	a, err := newApp(ctx, cfg, quiet, io.Discard)
	require.NoError(t, err)
	defer a.close()

	require.NoError(t, a.importCorpus(ctx, ""))
	_, err = a.runner.Parse(ctx)
	require.NoError(t, err)
	require.NoError(t, a.runner.Evaluate(ctx))
	require.NoError(t, a.export(ctx))

	for _, name := range []string{"summary.yaml", "summary.json"} {
		info, err := os.Stat(filepath.Join(cfg.Publish.Dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}

func TestNewAppUnknownStore(t *testing.T) {
	t.Parallel()
	cfg := memoryConfig(t)
	cfg.Store = "sqlite"

	_, err := newApp(context.Background(), cfg, quiet, io.Discard)
	require.ErrorIs(t, err, errUnknownStore)
}

func TestImportNeedsInput(t *testing.T) {
	t.Parallel()
	cfg := memoryConfig(t)
	cfg.Fixtures = nil

	a, err := newApp(context.Background(), cfg, quiet, io.Discard)
	require.NoError(t, err)
	require.Error(t, a.importCorpus(context.Background(), ""))
}
