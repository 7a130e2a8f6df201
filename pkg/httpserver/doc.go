// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown.
//
// Run blocks until the context is cancelled, an interrupt or SIGTERM arrives,
// or Shutdown is called, then drains in-flight requests within the shutdown
// timeout. Listen errors are wrapped with ErrStart and shutdown errors with
// ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes as JSON.
package httpserver
