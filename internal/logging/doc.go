// Package logging builds slog loggers for the CLI: console or JSON output at
// a configured level, optionally teed into a log file under the configured
// log directory.
package logging
