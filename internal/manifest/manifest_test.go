package manifest_test

import (
	"errors"
	"strings"
	"testing"

	"stitch/internal/manifest"
	"stitch/internal/silence"
	"stitch/internal/staging"
)

func segs(names ...string) []staging.Segment {
	out := make([]staging.Segment, len(names))
	for i, name := range names {
		out[i] = staging.Segment{Index: i, Name: name}
	}
	return out
}

func pauses(names ...string) []silence.Clip {
	out := make([]silence.Clip, len(names))
	for i, name := range names {
		out[i] = silence.Clip{Gap: i, Name: name}
	}
	return out
}

func TestBuildAlternatesSegmentsAndPauses(t *testing.T) {
	m, err := manifest.Build(
		segs("segment_000.mp3", "segment_001.mp3", "segment_002.mp3"),
		pauses("silence_000_2.35s.mp3", "silence_001_3.10s.mp3"),
	)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if m.Len() != 5 {
		t.Fatalf("expected 2N-1 = 5 entries, got %d", m.Len())
	}
	want := []string{
		"segment_000.mp3",
		"silence_000_2.35s.mp3",
		"segment_001.mp3",
		"silence_001_3.10s.mp3",
		"segment_002.mp3",
	}
	for i, entry := range m.Entries() {
		if entry.Name != want[i] {
			t.Fatalf("entry %d: got %q, want %q", i, entry.Name, want[i])
		}
	}
}

func TestBuildSingleSegment(t *testing.T) {
	m, err := manifest.Build(segs("segment_000.mp3"), nil)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", m.Len())
	}
}

func TestBuildRejectsCountMismatch(t *testing.T) {
	if _, err := manifest.Build(segs("a", "b", "c"), pauses("p0")); !errors.Is(err, manifest.ErrCountMismatch) {
		t.Fatalf("expected ErrCountMismatch, got %v", err)
	}
	if _, err := manifest.Build(nil, nil); !errors.Is(err, manifest.ErrCountMismatch) {
		t.Fatalf("expected ErrCountMismatch for empty set, got %v", err)
	}
}

func TestWriteConcatListFormat(t *testing.T) {
	m, err := manifest.Build(segs("segment_000.mp3", "segment_001.mp3"), pauses("silence_000_2.00s.mp3"))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	var sb strings.Builder
	if err := m.Write(&sb); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	want := "file 'segment_000.mp3'\nfile 'silence_000_2.00s.mp3'\nfile 'segment_001.mp3'\n"
	if sb.String() != want {
		t.Fatalf("unexpected serialization:\n%q\nwant:\n%q", sb.String(), want)
	}
}

func TestWriteEscapesSingleQuotes(t *testing.T) {
	m, err := manifest.Build(segs("it's a take.mp3"), nil)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	var sb strings.Builder
	if err := m.Write(&sb); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	want := "file 'it'\\''s a take.mp3'\n"
	if sb.String() != want {
		t.Fatalf("unexpected escaping:\n%q\nwant:\n%q", sb.String(), want)
	}
}
