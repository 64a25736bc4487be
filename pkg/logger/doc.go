// Package logger builds the structured slog.Logger used by the benchmark
// commands and the HTTP API.
//
// New takes functional options for level, format and output. Context
// extractors registered with WithContextExtractors add attributes stored in
// context (the run identifier set by WithRunID) to every record:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(logger.RunIDExtractor),
//	)
//	ctx = logger.WithRunID(ctx, runID)
//	log.InfoContext(ctx, "parsed", logger.Provider("native"), logger.Count(n))
//
// Output goes to stderr by default so that command results written to stdout
// can be piped.
package logger
