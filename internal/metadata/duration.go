package metadata

import (
	"errors"
	"io"
	"time"

	"github.com/mewkiz/flac"
	"github.com/tcolgate/mp3"
)

// mp3Duration sums per-frame durations from the MPEG frame headers.
// Bytes that are not part of a frame (ID3 blocks, junk) are skipped by the
// decoder, so a file with tags but no frames yields zero without error.
func mp3Duration(r io.Reader) (time.Duration, error) {
	dec := mp3.NewDecoder(r)

	var frame mp3.Frame
	var skipped int
	var total time.Duration
	for {
		if err := dec.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) {
				return total, nil
			}
			return total, err
		}
		total += frame.Duration()
	}
}

// flacDuration derives the duration from the STREAMINFO block.
func flacDuration(r io.Reader) (time.Duration, error) {
	stream, err := flac.New(r)
	if err != nil {
		return 0, err
	}

	info := stream.Info
	if info.SampleRate == 0 || info.NSamples == 0 {
		return 0, nil
	}
	seconds := float64(info.NSamples) / float64(info.SampleRate)
	return time.Duration(seconds * float64(time.Second)), nil
}
