// Package manifest builds and serializes the ordered join specification the
// concat demuxer consumes.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"stitch/internal/silence"
	"stitch/internal/staging"
)

// ErrCountMismatch indicates the pause count is not segment count minus one.
// This is a programming-level invariant violation, not a user-facing failure.
var ErrCountMismatch = errors.New("pause count must equal segment count minus one")

// Entry is one line of the join specification, referencing a staged file by
// name relative to the staging directory.
type Entry struct {
	Name string
}

// Manifest is the ordered, alternating sequence seg0, pause0, seg1, ...,
// segN-1. Its length is 2N-1 for N segments.
type Manifest struct {
	entries []Entry
}

// Build alternates segments and pauses into a Manifest. It requires at least
// one segment and exactly len(segments)-1 pauses.
func Build(segments []staging.Segment, pauses []silence.Clip) (*Manifest, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrCountMismatch)
	}
	if len(pauses) != len(segments)-1 {
		return nil, fmt.Errorf("%w: %d segments, %d pauses", ErrCountMismatch, len(segments), len(pauses))
	}

	entries := make([]Entry, 0, 2*len(segments)-1)
	entries = append(entries, Entry{Name: segments[0].Name})
	for i, pause := range pauses {
		entries = append(entries, Entry{Name: pause.Name})
		entries = append(entries, Entry{Name: segments[i+1].Name})
	}
	return &Manifest{entries: entries}, nil
}

// Len returns the number of entries.
func (m *Manifest) Len() int { return len(m.entries) }

// Entries returns a copy of the ordered entries.
func (m *Manifest) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Write serializes the manifest in the concat demuxer list format, one
// file directive per entry. A single quote inside a name is emitted as
// close-quote, backslash-escaped quote, reopen-quote, so generated and
// caller-supplied names are equally safe.
func (m *Manifest) Write(w io.Writer) error {
	var b strings.Builder
	for _, entry := range m.entries {
		b.WriteString("file '")
		b.WriteString(strings.ReplaceAll(entry.Name, "'", `'\''`))
		b.WriteString("'\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFile serializes the manifest to path.
func (m *Manifest) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	if err := m.Write(file); err != nil {
		_ = file.Close()
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close manifest: %w", err)
	}
	return nil
}
