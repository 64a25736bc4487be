// Package pg bootstraps the PostgreSQL connection used to persist benchmark
// runs. It wraps pgx/v5 pooling with startup retries and applies the goose
// migrations that ship embedded in the binary.
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrations.FS, cfg, slog.Default()); err != nil {
//		return err
//	}
//
// Healthcheck turns the pool into a probe for the HTTP health endpoint and
// IsNotFoundError and IsForeignKeyViolationError classify driver errors.
package pg
