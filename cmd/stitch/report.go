package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dhowden/tag"

	"stitch/internal/ordering"
)

// printOrderedReport renders the diagnostics table for an ordered input set:
// position, filename, ordering key, filesystem timestamp, and embedded title
// when the file carries readable metadata. Everything here is informational;
// failures degrade to a dash instead of aborting the run.
func printOrderedReport(out io.Writer, ordered []ordering.Keyed) {
	rows := make([][]string, 0, len(ordered))
	for i, item := range ordered {
		modified := "-"
		if ts, err := ordering.DiagnosticTimestamp(item.Source.Path); err == nil {
			modified = ts.Format("2006-01-02 15:04:05")
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.Source.Filename,
			strconv.FormatInt(item.Key, 10),
			modified,
			embeddedTitle(item.Source.Path),
		})
	}
	fmt.Fprintln(out, renderTable(out, []string{"#", "File", "Key", "Modified", "Title"}, rows, 0, 2))
}

func embeddedTitle(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "-"
	}
	defer f.Close()
	meta, err := tag.ReadFrom(f)
	if err != nil || meta.Title() == "" {
		return "-"
	}
	return meta.Title()
}
