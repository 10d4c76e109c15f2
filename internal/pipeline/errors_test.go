package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapTagsMarkerAndPreservesCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrStagingFailure, StateStaging, "stage segments", "", cause)

	if !errors.Is(err, ErrStagingFailure) {
		t.Fatal("expected marker to survive wrapping")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to survive wrapping")
	}
	if !strings.Contains(err.Error(), "staging: stage segments") {
		t.Fatalf("expected stage context in message, got %q", err.Error())
	}
}

func TestWrapWithoutMarkerFallsBackToUnexpected(t *testing.T) {
	err := Wrap(nil, StateConcatenating, "join segments", "", errors.New("boom"))
	if !errors.Is(err, ErrUnexpectedFailure) {
		t.Fatalf("expected ErrUnexpectedFailure fallback, got %v", err)
	}
}

func TestUserMessageCoversEveryMarker(t *testing.T) {
	markers := []error{
		ErrToolUnavailable,
		ErrInputNotFound,
		ErrEmptyInputSet,
		ErrAmbiguousOrdering,
		ErrStagingFailure,
		ErrSynthesisFailure,
		ErrManifestInvariant,
		ErrConcatenationFailure,
		ErrUnexpectedFailure,
	}
	seen := make(map[string]bool)
	for _, marker := range markers {
		msg := UserMessage(Wrap(marker, StateValidating, "op", "", nil))
		if msg == "" {
			t.Fatalf("empty user message for %v", marker)
		}
		if seen[msg] {
			t.Fatalf("duplicate user message for %v: %q", marker, msg)
		}
		seen[msg] = true
	}
}

func TestStateLabel(t *testing.T) {
	if got := StateSynthesizingPauses.Label(); got != "Synthesizing Pauses" {
		t.Fatalf("Label() = %q", got)
	}
	if !StateDone.Terminal() || !StateFailed.Terminal() {
		t.Fatal("done and failed must be terminal")
	}
	if StateStaging.Terminal() {
		t.Fatal("staging must not be terminal")
	}
}
