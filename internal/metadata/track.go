package metadata

import (
	"fmt"
	"time"
)

// TrackInfo holds the descriptive metadata extracted from one audio file.
// Every tag field may be empty when the source tags omit it; Track defaults
// to 0 when absent. Instances live only long enough to be logged and folded
// into scan statistics.
type TrackInfo struct {
	Title    string
	Artist   string
	Album    string
	Genre    string
	Track    uint
	Duration time.Duration
}

// String renders the track for verbose scan narration.
func (t TrackInfo) String() string {
	return fmt.Sprintf("%q %q %q %q %d %s", t.Artist, t.Title, t.Album, t.Genre, t.Track, t.Duration)
}
