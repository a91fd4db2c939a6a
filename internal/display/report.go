// Package display renders per-pass scan reports for the console.
package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/bmillham/tag-test/internal/scan"
)

// Report is the user-facing read-out of one pass's statistics. Rendering is
// a pure transform: it enumerates the extension counts sorted by key and
// prints the summary counters, mutating nothing.
type Report struct {
	// Label is the section heading, e.g. "Estimate" or "Scan results"
	Label string
	// Stats is the pass accumulator to render
	Stats scan.Stats
	// ShowErrors includes the error counter; estimate passes omit it
	// because estimate mode cannot produce extraction errors
	ShowErrors bool
	// Color enables ANSI styling for terminal output
	Color bool
}

// Render writes the report to out.
func (r Report) Render(out io.Writer) {
	header := fmt.Sprintf("=== %s ===", r.Label)
	if r.Color {
		header = color.New(color.Bold).Sprint(header)
	}
	fmt.Fprintf(out, "%s\n", header)

	// Extension keys are quoted so the empty key and the "none" sentinel
	// stay distinguishable in the output.
	for _, tc := range r.Stats.SortedTypes() {
		fmt.Fprintf(out, "  %q: %d\n", tc.Key, tc.Count)
	}

	valid := fmt.Sprintf("Valid: %d", r.Stats.ValidFiles)
	if r.Color {
		valid = color.New(color.FgGreen).Sprint(valid)
	}

	summary := fmt.Sprintf("%s, Other: %d", valid, r.Stats.OtherFiles)
	if r.ShowErrors {
		errs := fmt.Sprintf("Error: %d", r.Stats.ErrorFiles)
		if r.Color && r.Stats.ErrorFiles > 0 {
			errs = color.New(color.FgRed).Sprint(errs)
		}
		summary += ", " + errs
	}
	summary += fmt.Sprintf(", Dirs: %d", r.Stats.Directories)

	fmt.Fprintf(out, "%s\n", summary)
}
