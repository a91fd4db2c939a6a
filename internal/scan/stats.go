package scan

import "sort"

// Stats accumulates the counters for one scan pass. Each pass owns its own
// instance; estimate and real passes never share or merge statistics.
type Stats struct {
	// Directories counts directory nodes, including each scan root
	Directories uint
	// OtherFiles counts files whose extension is not in the valid set
	OtherFiles uint
	// ErrorFiles counts valid-extension files whose extraction failed
	// (only ever incremented during a full pass)
	ErrorFiles uint
	// ValidFiles counts valid-extension files classified (estimate pass)
	// or successfully extracted (full pass)
	ValidFiles uint
	// FoundTypes counts every extension key observed, valid or not
	FoundTypes map[string]uint
}

// NewStats returns an empty accumulator.
func NewStats() Stats {
	return Stats{FoundTypes: make(map[string]uint)}
}

// TotalFiles returns the number of file entries visited in the pass.
// It always equals the sum over FoundTypes, and equals
// OtherFiles + ValidFiles + ErrorFiles.
func (s Stats) TotalFiles() uint {
	return s.OtherFiles + s.ValidFiles + s.ErrorFiles
}

// TypeCount is one (extension key, occurrences) pair of the read-out.
type TypeCount struct {
	Key   string
	Count uint
}

// SortedTypes returns the per-extension counts ordered lexicographically by
// key, for deterministic reporting.
func (s Stats) SortedTypes() []TypeCount {
	keys := make([]string, 0, len(s.FoundTypes))
	for k := range s.FoundTypes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]TypeCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, TypeCount{Key: k, Count: s.FoundTypes[k]})
	}
	return out
}
