package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
general:
  verbose: true
directories:
  scan: [/music, /incoming]
types:
  valid: [mp3, flac]
`), 0644))

		stdout, _, err := execute(t, "validate", path)
		require.NoError(t, err)

		assert.Contains(t, stdout, path+" is valid")
		assert.Contains(t, stdout, "Scan roots: 2")
		assert.Contains(t, stdout, "- /music")
		assert.Contains(t, stdout, "Valid types: mp3, flac")
		assert.Contains(t, stdout, "Verbose: true")
		assert.Contains(t, stdout, "Log level: info")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "validate", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
directories:
  scan: [/music]
types:
  valid: []
`), 0644))

		_, _, err := execute(t, "validate", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one extension")
	})

	t.Run("too many args", func(t *testing.T) {
		_, _, err := execute(t, "validate", "a.yaml", "b.yaml")
		assert.Error(t, err)
	})
}
