// Package logger provides the process-wide slog logger.
//
// All diagnostic output goes to stderr; stdout is reserved for the
// review output path printed on success.
package logger
