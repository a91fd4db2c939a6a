package metadata

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmillham/tag-test/internal/logger"
)

// id3v1Genres mirrors the genre table indices used by ID3v1 writers.
const genreRock = 17

// writeID3v1File writes a file consisting of a junk audio region followed by
// a 128-byte ID3v1.1 trailer. A track byte of 0 leaves the track unset.
func writeID3v1File(t *testing.T, path, title, artist, album string, track byte, genre byte) {
	t.Helper()

	pad := func(s string, n int) []byte {
		b := make([]byte, n)
		copy(b, s)
		return b
	}

	var buf bytes.Buffer
	buf.Write(make([]byte, 64)) // stand-in audio region, no MPEG sync words
	buf.WriteString("TAG")
	buf.Write(pad(title, 30))
	buf.Write(pad(artist, 30))
	buf.Write(pad(album, 30))
	buf.Write(pad("2024", 4))
	comment := make([]byte, 30)
	comment[29] = track // ID3v1.1 track marker, comment[28] stays zero
	buf.Write(comment)
	buf.WriteByte(genre)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func newTestExtractor(buf *bytes.Buffer) *Extractor {
	return NewExtractor(logger.NewConsoleLogger(buf, "debug"))
}

func TestExtract(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("id3v1 tags", func(t *testing.T) {
		path := filepath.Join(tmpDir, "tagged.mp3")
		writeID3v1File(t, path, "Test Title", "Test Artist", "Test Album", 7, genreRock)

		var logBuf bytes.Buffer
		info, err := newTestExtractor(&logBuf).Extract(path)
		require.NoError(t, err)

		assert.Equal(t, "Test Title", info.Title)
		assert.Equal(t, "Test Artist", info.Artist)
		assert.Equal(t, "Test Album", info.Album)
		assert.Equal(t, "Rock", info.Genre)
		assert.Equal(t, uint(7), info.Track)
		assert.NotContains(t, logBuf.String(), "Bad track info")
	})

	t.Run("missing track defaults to zero with diagnostic", func(t *testing.T) {
		path := filepath.Join(tmpDir, "notrack.mp3")
		writeID3v1File(t, path, "Untracked", "Someone", "Somewhere", 0, genreRock)

		var logBuf bytes.Buffer
		info, err := newTestExtractor(&logBuf).Extract(path)
		require.NoError(t, err)

		assert.Equal(t, uint(0), info.Track)
		assert.Contains(t, logBuf.String(), "Bad track info in "+path)
	})

	t.Run("missing optional fields default to empty", func(t *testing.T) {
		path := filepath.Join(tmpDir, "sparse.mp3")
		// Artist and album deliberately blank: the extractor must not
		// treat their absence as a failure.
		writeID3v1File(t, path, "", "", "", 1, genreRock)

		var logBuf bytes.Buffer
		info, err := newTestExtractor(&logBuf).Extract(path)
		require.NoError(t, err)

		assert.Empty(t, info.Title)
		assert.Empty(t, info.Artist)
		assert.Empty(t, info.Album)
	})

	t.Run("no tag container", func(t *testing.T) {
		path := filepath.Join(tmpDir, "untagged.mp3")
		require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 256), 0644))

		var logBuf bytes.Buffer
		_, err := newTestExtractor(&logBuf).Extract(path)

		var noTags *NoTagsError
		require.ErrorAs(t, err, &noTags)
		assert.Equal(t, path, noTags.Path)
	})

	t.Run("truncated file is a codec error", func(t *testing.T) {
		path := filepath.Join(tmpDir, "stub.mp3")
		require.NoError(t, os.WriteFile(path, []byte("ab"), 0644))

		var logBuf bytes.Buffer
		_, err := newTestExtractor(&logBuf).Extract(path)

		var codecErr *CodecError
		require.ErrorAs(t, err, &codecErr)
		assert.Equal(t, path, codecErr.Path)
	})

	t.Run("unreadable file is a codec error", func(t *testing.T) {
		var logBuf bytes.Buffer
		_, err := newTestExtractor(&logBuf).Extract(filepath.Join(tmpDir, "missing.mp3"))

		var codecErr *CodecError
		require.ErrorAs(t, err, &codecErr)
	})
}

func TestTrackInfoString(t *testing.T) {
	info := TrackInfo{Title: "Song", Artist: "Band", Album: "LP", Genre: "Rock", Track: 3}
	s := info.String()

	assert.Contains(t, s, `"Band"`)
	assert.Contains(t, s, `"Song"`)
	assert.Contains(t, s, `"LP"`)
	assert.Contains(t, s, "3")
}
