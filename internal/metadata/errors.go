package metadata

import "fmt"

// NoTagsError reports a file with no recognizable tag container at all.
type NoTagsError struct {
	Path string
}

func (e *NoTagsError) Error() string {
	return fmt.Sprintf("no tags found in %s", e.Path)
}

// CodecError reports a lower-level failure opening or decoding a file,
// carrying the underlying diagnostic.
type CodecError struct {
	Path string
	Err  error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("reading tags from %s: %v", e.Path, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}
