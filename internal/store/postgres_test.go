package store_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uabench/internal/db/migrations"
	"github.com/dmitrymomot/uabench/internal/store"
	"github.com/dmitrymomot/uabench/pkg/pg"
)

// TestPostgres runs the store contract against a real database when
// UABENCH_TEST_DATABASE_URL is set. The database is wiped first.
func TestPostgres(t *testing.T) {
	url := os.Getenv("UABENCH_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("UABENCH_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	cfg := pg.Config{
		ConnectionString: url,
		MaxOpenConns:     4,
		RetryAttempts:    1,
		MigrationsTable:  "uabench_migrations",
	}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.Migrate(ctx, pool, migrations.FS, cfg, slog.Default()))
	_, err = pool.Exec(ctx, `TRUNCATE providers, user_agents CASCADE`)
	require.NoError(t, err)

	runStoreContract(t, store.NewPostgres(pool))
}
