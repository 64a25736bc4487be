// Package httpserver runs an http.Handler with sane timeouts and a graceful
// shutdown bound to a context.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Run returns nil after a clean shutdown. Listen failures are wrapped with
// ErrStart and a shutdown that exceeds the timeout with ErrShutdown.
//
// HealthHandler serves a JSON liveness or readiness probe from a set of named
// checks, for example pg.Healthcheck(pool).
package httpserver
