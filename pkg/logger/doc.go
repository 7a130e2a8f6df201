// Package logger builds the *slog.Logger used by the CLI, the HTTP API and the
// state machines.
//
// New applies functional options on top of production-safe defaults (JSON,
// info level, stdout). WithEnvironment picks a preset per deployment
// environment: development gets text output at debug level, staging and
// production get JSON at info level. Every record can be enriched with values
// pulled from the request context through ContextExtractor callbacks, which is
// how request ids reach log lines written deep inside a handler.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "whitebox"),
//	    logger.WithContextExtractors(requestid.LogExtractor),
//	)
//	log.InfoContext(ctx, "rule evaluated", logger.Rule("get_grade"))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
