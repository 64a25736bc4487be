// Command uabench benchmarks user agent parsers against each other.
//
// Usage:
//
//	uabench <command> [corpus]
//
// Commands:
//
//	migrate    apply the database schema
//	import     register the user agents of a corpus file and the fixtures
//	parse      run every provider over every user agent
//	evaluate   compare the stored results
//	summary    print the agreement summary as YAML
//	export     publish the summary as YAML and JSON
//	serve      start the read-only JSON API
//	run        migrate, import, parse and evaluate, then print the summary
//
// Configuration comes from the environment and an optional .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uabench/pkg/config"
	"github.com/dmitrymomot/uabench/pkg/logger"
	"github.com/dmitrymomot/uabench/pkg/requestid"
)

const usage = `usage: uabench [-env file] <migrate|import|parse|evaluate|summary|export|serve|run> [corpus]`

func main() {
	envFile := flag.String("env", "", "additional .env file to load")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadEnv(optional(*envFile)...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	var cfg Config
	config.MustLoad(&cfg)

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env),
		logger.WithContextExtractors(logger.RunIDExtractor, requestid.Extractor),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	ctx = logger.WithRunID(ctx, uuid.NewString())
	if err := run(ctx, cfg, log, flag.Args()); err != nil {
		log.ErrorContext(ctx, "command failed", slog.String("command", flag.Arg(0)), logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger, args []string) error {
	command, corpus := args[0], ""
	if len(args) > 1 {
		corpus = args[1]
	}

	a, err := newApp(ctx, cfg, log, os.Stdout)
	if err != nil {
		return err
	}
	defer a.close()

	switch command {
	case "migrate":
		return a.migrate(ctx)
	case "import":
		return a.importCorpus(ctx, corpus)
	case "parse":
		_, err := a.runner.Parse(ctx)
		return err
	case "evaluate":
		return a.runner.Evaluate(ctx)
	case "summary":
		return a.printSummary(ctx)
	case "export":
		return a.export(ctx)
	case "serve":
		return a.serve(ctx)
	case "run":
		return a.runAll(ctx, corpus)
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func optional(file string) []string {
	if file == "" {
		return nil
	}
	return []string{file}
}
