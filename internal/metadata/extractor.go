// Package metadata wraps the tag-reading capability behind a small adapter.
//
// The adapter probes a file's container format, reads its primary tag set and
// audio properties, and returns a normalized TrackInfo or a classified error
// (NoTagsError or CodecError). It never panics past its own boundary: a tag
// field missing from the container is data, not a fault, and defaults to the
// zero value. File handles are scoped to one Extract call and released on
// every path.
package metadata

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dhowden/tag"

	"github.com/bmillham/tag-test/internal/logger"
)

// Extractor reads tags and audio properties from audio files.
type Extractor struct {
	log *logger.ConsoleLogger
}

// NewExtractor creates an extractor that reports fallbacks and probe
// diagnostics through the given logger.
func NewExtractor(log *logger.ConsoleLogger) *Extractor {
	return &Extractor{log: log}
}

// Extract opens and probes one file. On success it returns a fully populated
// TrackInfo. Failure is classified: *NoTagsError when the file has no tag
// container at all, *CodecError for any other open or decode failure.
func (e *Extractor) Extract(path string) (*TrackInfo, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the configured scan roots
	if err != nil {
		return nil, &CodecError{Path: path, Err: err}
	}
	defer f.Close() //nolint:errcheck

	m, err := tag.ReadFrom(f)
	if err != nil {
		if errors.Is(err, tag.ErrNoTagsFound) {
			return nil, &NoTagsError{Path: path}
		}
		return nil, &CodecError{Path: path, Err: err}
	}

	// Missing fields are not errors: title, genre, artist and album all
	// default to the empty string when the tag set omits them.
	track, _ := m.Track()
	if track <= 0 {
		e.log.LogWarn(fmt.Sprintf("Bad track info in %s", path))
		track = 0
	}

	return &TrackInfo{
		Title:    m.Title(),
		Artist:   m.Artist(),
		Album:    m.Album(),
		Genre:    m.Genre(),
		Track:    uint(track),
		Duration: e.readDuration(f, m.FileType(), path),
	}, nil
}

// readDuration probes the audio properties of an already-open file.
// Duration is best effort: a container we cannot time, or a decode problem
// partway through, yields whatever was accumulated (possibly zero) plus a
// debug diagnostic, never an extraction failure.
func (e *Extractor) readDuration(f *os.File, fileType tag.FileType, path string) time.Duration {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		e.log.LogDebug(fmt.Sprintf("rewinding %s for duration probe: %v", path, err))
		return 0
	}

	var d time.Duration
	var err error
	switch fileType {
	case tag.MP3:
		d, err = mp3Duration(f)
	case tag.FLAC:
		d, err = flacDuration(f)
	default:
		e.log.LogDebug(fmt.Sprintf("no duration probe for %s container: %s", fileType, path))
		return 0
	}
	if err != nil {
		e.log.LogDebug(fmt.Sprintf("duration probe stopped early in %s: %v", path, err))
	}
	return d
}
