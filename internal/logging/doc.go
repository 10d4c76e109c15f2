// Package logging assembles the structured slog loggers used across stitch.
//
// It centralizes level and format plumbing and exposes Attr helpers so stage
// code emits data with a consistent shape. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
