// Package logging assembles structured slog loggers and formatting helpers used
// across codecast.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so command code can tag log
// lines with the run's correlation id and the content tree being compiled.
// The package also provides a no-op logger for tests and library callers that
// do not want output.
package logging
