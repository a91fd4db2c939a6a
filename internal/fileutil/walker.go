package fileutil

import (
	"os"
	"path/filepath"
)

// Entry describes one directory entry yielded by Walk.
type Entry struct {
	// Path is the full path of the entry, rooted at the Walk argument
	Path string
	// Name is the base file name of the entry
	Name string
	// IsDir reports whether the entry is a directory (after link resolution)
	IsDir bool
}

// WalkFunc is called once per yielded entry.
type WalkFunc func(Entry)

// Walk enumerates all entries reachable from root, recursively, with the
// children of each directory yielded in name order. The root directory
// itself is not yielded; a root that turns out to be a plain file is yielded
// as a single file entry. Links are resolved with os.Stat, so a symlink to a
// directory is descended into. There is no depth limit; a cyclic symlink
// graph will not terminate.
func Walk(root string, fn WalkFunc) {
	info, err := os.Stat(root)
	if err != nil {
		// Unreadable root: skipped entirely, same as any other entry.
		return
	}

	if !info.IsDir() {
		fn(Entry{Path: root, Name: filepath.Base(root), IsDir: false})
		return
	}
	walkDir(root, fn)
}

func walkDir(dir string, fn WalkFunc) {
	// os.ReadDir sorts entries by file name, which gives the walk its
	// deterministic order. A ReadDir failure drops the whole subtree.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Stat instead of entry.Info so symlinks resolve to their targets.
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		fn(Entry{Path: path, Name: entry.Name(), IsDir: info.IsDir()})
		if info.IsDir() {
			walkDir(path, fn)
		}
	}
}
