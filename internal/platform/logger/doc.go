// Package logger configures the application's structured slog logging
// and propagates request-scoped loggers through context.
package logger
