// Package scan drives the two-pass traversal of the configured roots.
//
// A run consists of two independent passes over the same roots: an estimate
// pass that classifies and counts by name only, and a full pass that also
// extracts metadata from every valid-extension file. Both passes share one
// parameterized routine so their classification behavior cannot drift apart;
// the mode decides nothing except whether extraction is attempted.
package scan

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bmillham/tag-test/internal/classify"
	"github.com/bmillham/tag-test/internal/config"
	"github.com/bmillham/tag-test/internal/fileutil"
	"github.com/bmillham/tag-test/internal/logger"
	"github.com/bmillham/tag-test/internal/metadata"
)

// Mode selects the behavior of one pass.
type Mode int

const (
	// ModeEstimate classifies and counts without touching file contents
	ModeEstimate Mode = iota
	// ModeFull additionally extracts metadata from valid files
	ModeFull
)

// String returns the narration verb for the mode.
func (m Mode) String() string {
	if m == ModeEstimate {
		return "Estimating"
	}
	return "Scanning"
}

// Extractor is the capability the full pass needs from the metadata adapter.
type Extractor interface {
	Extract(path string) (*metadata.TrackInfo, error)
}

// Runner executes scan passes over the configured roots.
type Runner struct {
	cfg       *config.Config
	extractor Extractor
	log       *logger.ConsoleLogger
}

// NewRunner creates a pass runner. The extractor is only invoked during
// ModeFull passes; estimate passes read nothing but directory listings.
func NewRunner(cfg *config.Config, extractor Extractor, log *logger.ConsoleLogger) *Runner {
	return &Runner{
		cfg:       cfg,
		extractor: extractor,
		log:       log,
	}
}

// Run executes one pass over every configured root, in order, and returns
// that pass's statistics. Per-file extraction failures are isolated: they
// increment ErrorFiles, produce one error line, and the pass continues with
// the next entry.
func (r *Runner) Run(mode Mode) Stats {
	passID := uuid.New().String()
	r.log.LogDebug(fmt.Sprintf("%s pass %s over %d root(s)", mode, passID, len(r.cfg.Directories.Scan)))

	stats := NewStats()
	for _, root := range r.cfg.Directories.Scan {
		fileutil.Walk(root, func(entry fileutil.Entry) {
			r.process(entry, mode, &stats)
		})
	}

	r.log.LogDebug(fmt.Sprintf("%s pass %s visited %d file(s) in %d dir(s)", mode, passID, stats.TotalFiles(), stats.Directories))
	return stats
}

// process folds one directory entry into the pass statistics.
func (r *Runner) process(entry fileutil.Entry, mode Mode, stats *Stats) {
	if entry.IsDir {
		stats.Directories++
		if r.cfg.General.Verbose {
			r.log.LogInfo(fmt.Sprintf("%s Dir: %s", mode, entry.Path))
		}
		return
	}

	key := classify.Key(entry.Name)
	stats.FoundTypes[key]++

	if !r.cfg.IsValidType(key) {
		stats.OtherFiles++
		return
	}

	if mode == ModeFull {
		info, err := r.extractor.Extract(entry.Path)
		if err != nil {
			r.log.LogError(err.Error())
			stats.ErrorFiles++
			return
		}
		if r.cfg.General.Verbose {
			r.log.LogInfo(info.String())
		}
	}
	stats.ValidFiles++
}
