package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uabench/internal/api"
	"github.com/dmitrymomot/uabench/internal/db/migrations"
	"github.com/dmitrymomot/uabench/internal/runner"
	"github.com/dmitrymomot/uabench/internal/store"
	"github.com/dmitrymomot/uabench/pkg/config"
	"github.com/dmitrymomot/uabench/pkg/httpserver"
	"github.com/dmitrymomot/uabench/pkg/logger"
	"github.com/dmitrymomot/uabench/pkg/pg"
	"github.com/dmitrymomot/uabench/pkg/publish"
)

var errUnknownStore = errors.New("unknown store")

type app struct {
	cfg    Config
	log    *slog.Logger
	out    io.Writer
	store  store.Store
	runner *runner.Runner
	corpus []string

	pool  *pgxpool.Pool
	pgCfg pg.Config
}

func newApp(ctx context.Context, cfg Config, log *slog.Logger, out io.Writer) (*app, error) {
	a := &app{cfg: cfg, log: log, out: out}

	switch cfg.Store {
	case storeMemory:
		a.store = store.NewMemory()
	case storePostgres:
		if err := config.Load(&a.pgCfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, a.pgCfg)
		if err != nil {
			return nil, err
		}
		a.pool = pool
		a.store = store.NewPostgres(pool)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownStore, cfg.Store)
	}

	providers, corpus, err := buildProviders(cfg.Providers, cfg.Fixtures)
	if err != nil {
		a.close()
		return nil, err
	}
	a.corpus = corpus

	a.runner, err = runner.New(a.store, providers,
		runner.WithWorkers(cfg.Workers),
		runner.WithLogger(log),
	)
	if err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *app) migrate(ctx context.Context) error {
	if a.pool == nil {
		a.log.InfoContext(ctx, "memory store needs no migrations")
		return nil
	}
	return pg.Migrate(ctx, a.pool, migrations.FS, a.pgCfg, a.log.With(logger.Component("migrations")))
}

// importCorpus imports the corpus file at path, or the configured one, and
// the user agents of every fixture.
func (a *app) importCorpus(ctx context.Context, path string) error {
	if path == "" {
		path = a.cfg.CorpusPath
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		uas, err := runner.ReadCorpus(f)
		if err != nil {
			return err
		}
		if _, err := a.runner.Import(ctx, uas, path); err != nil {
			return err
		}
	}
	if len(a.corpus) > 0 {
		if _, err := a.runner.Import(ctx, a.corpus, "fixtures"); err != nil {
			return err
		}
	}
	if path == "" && len(a.corpus) == 0 {
		return errors.New("nothing to import: pass a corpus file or set UABENCH_CORPUS_PATH or UABENCH_FIXTURES")
	}
	return nil
}

func (a *app) printSummary(ctx context.Context) error {
	summary, err := a.runner.Summary(ctx)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return err
	}
	return enc.Close()
}

func (a *app) export(ctx context.Context) error {
	p, err := publish.New(ctx, a.cfg.Publish)
	if err != nil {
		return err
	}
	summary, err := a.runner.Summary(ctx)
	if err != nil {
		return err
	}

	yamlObj, err := publish.YAML(ctx, p, a.cfg.ReportKey+".yaml", summary)
	if err != nil {
		return err
	}
	jsonObj, err := publish.JSON(ctx, p, a.cfg.ReportKey+".json", summary)
	if err != nil {
		return err
	}
	a.log.InfoContext(ctx, "report published",
		slog.String("yaml", yamlObj.URL),
		slog.String("json", jsonObj.URL),
	)
	return nil
}

func (a *app) serve(ctx context.Context) error {
	opts := []api.Option{api.WithLogger(a.log)}
	if a.pool != nil {
		opts = append(opts, api.WithHealthCheck("database", pg.Healthcheck(a.pool)))
	}
	srv := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(a.log))
	return srv.Run(ctx, api.Router(a.runner, opts...))
}

// runAll executes every stage against the configured store and prints the
// summary.
func (a *app) runAll(ctx context.Context, corpusPath string) error {
	if err := a.migrate(ctx); err != nil {
		return err
	}
	if err := a.importCorpus(ctx, corpusPath); err != nil {
		return err
	}
	if _, err := a.runner.Parse(ctx); err != nil {
		return err
	}
	if err := a.runner.Evaluate(ctx); err != nil {
		return err
	}
	return a.printSummary(ctx)
}
