package main

import (
	"github.com/dmitrymomot/uabench/pkg/httpserver"
	"github.com/dmitrymomot/uabench/pkg/publish"
)

const (
	storePostgres = "postgres"
	storeMemory   = "memory"
)

// Config is the application configuration. The database settings live in
// pg.Config and are only loaded for the postgres store.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`

	Store      string   `env:"UABENCH_STORE" envDefault:"postgres"`
	Workers    int      `env:"UABENCH_WORKERS" envDefault:"0"`
	Providers  []string `env:"UABENCH_PROVIDERS" envDefault:"native,mssola" envSeparator:","`
	Fixtures   []string `env:"UABENCH_FIXTURES" envSeparator:","`
	CorpusPath string   `env:"UABENCH_CORPUS_PATH"`
	ReportKey  string   `env:"UABENCH_REPORT_KEY" envDefault:"summary"`

	HTTP    httpserver.Config
	Publish publish.Config
}
