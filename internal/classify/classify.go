// Package classify derives canonical extension keys from file names.
//
// A key is the lowercased segment after the final dot, so classification is
// case-insensitive and multi-dot names use only the last segment
// ("archive.tar.gz" classifies as "gz"). A name with no dot at all gets the
// sentinel key "none" so extensionless files are still countable as a group.
package classify

import "strings"

// NoExtension is the sentinel key for file names containing no dot.
const NoExtension = "none"

// Key returns the canonical extension key for a file name.
// Note that a leading-dot name like ".gitignore" yields "", not the
// sentinel: the dot is a separator and the extension segment is empty.
func Key(fileName string) string {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 {
		return NoExtension
	}
	if idx == 0 {
		// The only dot is the hidden-file prefix: no extension segment.
		return ""
	}
	return strings.ToLower(fileName[idx+1:])
}
