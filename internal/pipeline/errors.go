package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"stitch/internal/deps"
)

// Sentinel markers classifying every way a run can fail. Stage code wraps the
// underlying cause with one of these so callers can map failures to exit
// behavior and remediation text via errors.Is.
var (
	ErrToolUnavailable      = errors.New("tool unavailable")
	ErrInputNotFound        = errors.New("input not found")
	ErrEmptyInputSet        = errors.New("empty input set")
	ErrAmbiguousOrdering    = errors.New("ambiguous ordering")
	ErrStagingFailure       = errors.New("staging failure")
	ErrSynthesisFailure     = errors.New("synthesis failure")
	ErrManifestInvariant    = errors.New("manifest invariant violation")
	ErrConcatenationFailure = errors.New("concatenation failure")
	ErrUnexpectedFailure    = errors.New("unexpected failure")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification.
func Wrap(marker error, state State, operation, message string, err error) error {
	detail := buildDetail(string(state), operation, message)
	if marker == nil {
		marker = ErrUnexpectedFailure
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(state, operation, message string) string {
	parts := make([]string, 0, 3)
	if state = strings.TrimSpace(state); state != "" {
		parts = append(parts, state)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}

// UserMessage renders an actionable, user-facing message for a run failure.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrToolUnavailable):
		return fmt.Sprintf("FFmpeg is not installed or not responding.\n%s", deps.InstallHint())
	case errors.Is(err, ErrInputNotFound):
		return "The input directory does not exist. Create it and place your audio files inside."
	case errors.Is(err, ErrEmptyInputSet):
		return "No matching audio files were found in the input directory."
	case errors.Is(err, ErrAmbiguousOrdering):
		return "Some filenames carry no ordering key (a run of 10 or more digits). Rename the listed files or remove them from the input directory."
	case errors.Is(err, ErrStagingFailure):
		return "Copying an input into the staging area failed. The offending file is named above; check that it is a readable audio file."
	case errors.Is(err, ErrSynthesisFailure):
		return "Generating a silence clip failed. Check that your FFmpeg build includes the lavfi device."
	case errors.Is(err, ErrConcatenationFailure):
		return "Combining the staged files failed. The FFmpeg diagnostics are included above; check write permissions on the output location."
	case errors.Is(err, ErrManifestInvariant):
		return "Internal invariant violation while building the join manifest. This is a bug in stitch; please report it."
	default:
		return "The run failed unexpectedly. Re-run with logging.level = \"debug\" for details."
	}
}
