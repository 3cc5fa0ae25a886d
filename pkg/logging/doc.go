// Package logging wraps the standard library slog package with census
// defaults: structured JSON output to stderr, module/version context on
// every entry, LOG_LEVEL environment configuration, and source location
// tracking for debug logs.
//
// Set the default logger early in main:
//
//	logging.SetDefaultStructuredLogger("census", version)
//	slog.Info("starting", "hosts", len(hosts))
//
// Supported levels (case-insensitive): DEBUG, INFO (default), WARN/WARNING,
// ERROR.
package logging
