// Package pipeline orchestrates the combine run: environment probe, source
// discovery, ordering, staging, pause synthesis, manifest construction, and
// the final lossless concatenation.
//
// Control flow is strictly sequential with no fan-out. Every stage fails fast
// and aborts all later stages; staging cleanup executes on every exit path as
// the run unwinds. The package owns the error taxonomy that maps stage
// failures to actionable user-facing messages and process exit codes.
package pipeline
