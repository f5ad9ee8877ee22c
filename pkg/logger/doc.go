// Package logger builds log/slog loggers for ddauth host applications.
//
// Loggers write JSON (or text) to stdout and, when SENTRY_DSN is set, forward
// warnings and errors to Sentry. Context extractors add request-scoped
// attributes, such as request IDs, to every record:
//
//	log := logger.New(logger.Config{Level: "debug"}, requestIDExtractor)
//	log.InfoContext(ctx, "login succeeded", slog.String("provider", "dd"))
//
// The oauth package never logs; errors are returned to the caller, which
// decides what to record.
package logger
