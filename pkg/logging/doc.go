// Package logging provides structured logging for devaci components.
//
// It wraps the standard library slog package with devaci defaults: JSON output
// to stderr, module/version context on every record, LOG_LEVEL environment
// configuration, and source location tracking at debug level.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("devaci", version)
//
//	    slog.Info("rendering template", "path", path)
//	    slog.Error("commit failed", "error", err)
//	}
//
// Setting an explicit level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("devaci", version, "debug")
//
// The LOG_LEVEL environment variable controls verbosity when no explicit level
// is given (debug, info, warn, error; default info).
package logging
