// Package clientip resolves the client address of an HTTP request.
//
// Resolve consults the configured proxy headers in order and falls back to
// RemoteAddr. Only headers set by a trusted proxy should be listed: a client
// can put any value in them.
//
//	r.Use(clientip.Middleware(clientip.WithHeaders("X-Forwarded-For")))
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
package clientip
