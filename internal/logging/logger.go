// Package logging defines the structured-logging interface used across
// forestadmin and its slog-backed implementation.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Warn(ctx, "upload failed", "category", "E", "correlation_id", id)
type Logger interface {
	// Debug logs diagnostic detail such as transfer progress.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a recoverable failure, e.g. one attachment that did not upload.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure that aborted an operation.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
