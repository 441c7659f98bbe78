// Package httpserver runs an http.Handler with graceful shutdown, server
// timeouts from env-driven Config and a liveness/readiness handler.
//
// Run binds the socket first, then calls start hooks, then serves until the
// context is cancelled, SIGINT/SIGTERM arrives or Shutdown is called:
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	router.Get("/health/live", httpserver.HealthCheckHandler(log, 0))
//	router.Get("/health/ready", httpserver.HealthCheckHandler(log, time.Second,
//		httpserver.Check{Name: "redis", Probe: redis.Healthcheck(client)},
//	))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen and serve errors are joined with ErrStart, shutdown errors with
// ErrShutdown.
package httpserver
