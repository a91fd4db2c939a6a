// Package fileutil provides the directory traversal used by the scanner.
//
// The walker enumerates every entry reachable from a root, depth-first, with
// the children of each directory visited in name order so that repeated scans
// of an unchanged tree see entries in the same sequence. Symbolic links are
// followed as if they were regular files or directories. Entries that cannot
// be read (permission errors, broken links, entries removed mid-walk) are
// silently skipped rather than reported; traversal problems are invisible to
// callers and are never counted as scan errors.
package fileutil
