// Package staging owns the ephemeral working directory of a pipeline run.
//
// Each run acquires its own uniquely named directory under the configured
// staging root, protected by a file lock so two runs never share a root. The
// area holds the canonically named segment copies, the generated silence
// clips, and the concat manifest, and is removed on every exit path.
package staging
