// Package ordering derives the deterministic playback order of discovered
// inputs from the numeric sequence keys embedded in their filenames.
package ordering

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"stitch/internal/discovery"
)

// minKeyDigits is the shortest digit run treated as an ordering key. Long runs
// tolerate embedded epoch-millisecond identifiers while rejecting short
// incidental numbers such as "take 2".
const minKeyDigits = 10

// Keyed pairs a source file with its extracted ordering key.
type Keyed struct {
	Source discovery.SourceFile
	Key    int64
}

// MissingKeyError names the files that carry no extractable ordering key.
type MissingKeyError struct {
	Filenames []string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("no ordering key in %d file(s): %s", len(e.Filenames), strings.Join(e.Filenames, ", "))
}

// ExtractKey scans filename for the first run of at least ten consecutive
// digits and parses it as the ordering key. First match wins.
func ExtractKey(filename string) (int64, bool) {
	start := -1
	for i := 0; i <= len(filename); i++ {
		digit := i < len(filename) && filename[i] >= '0' && filename[i] <= '9'
		if digit {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= minKeyDigits {
			key, err := strconv.ParseInt(filename[start:i], 10, 64)
			if err == nil {
				return key, true
			}
		}
		start = -1
	}
	return 0, false
}

// Sort establishes the total playback order: ascending by extracted key, with
// equal keys keeping discovery order. Files with no extractable key make the
// order undefined, so they fail the whole set via *MissingKeyError.
func Sort(sources []discovery.SourceFile) ([]Keyed, error) {
	keyed := make([]Keyed, 0, len(sources))
	var missing []string
	for _, src := range sources {
		key, ok := ExtractKey(src.Filename)
		if !ok {
			missing = append(missing, src.Filename)
			continue
		}
		keyed = append(keyed, Keyed{Source: src, Key: key})
	}
	if len(missing) > 0 {
		return nil, &MissingKeyError{Filenames: missing}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].Key < keyed[j].Key
	})
	return keyed, nil
}

// DiagnosticTimestamp reports the filesystem modification time of a source for
// reporting only. It never feeds the sort.
func DiagnosticTimestamp(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
