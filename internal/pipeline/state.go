package pipeline

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// State identifies a pipeline stage or terminal outcome.
type State string

const (
	StateIdle               State = "idle"
	StateValidating         State = "validating"
	StateDiscovering        State = "discovering"
	StateOrdering           State = "ordering"
	StateStaging            State = "staging"
	StateSynthesizingPauses State = "synthesizing_pauses"
	StateBuildingManifest   State = "building_manifest"
	StateConcatenating      State = "concatenating"
	StateDone               State = "done"
	StateFailed             State = "failed"
)

var stateTitle = cases.Title(language.Und)

// Label returns the human-readable form of the state for tables and logs.
func (s State) Label() string {
	return stateTitle.String(strings.ReplaceAll(string(s), "_", " "))
}

// Terminal reports whether the state ends a run.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
