// Package jar implements the archive engine: streaming a directory tree
// into a jar with a manifest header, exploding jars and plain classpath
// entries into a staging tree, and assembling a standalone (uber) jar
// from a primary artifact and its dependency archives.
package jar

import (
	"fmt"
	"strings"
)

// CollisionFunc is invoked when exploding is about to overwrite a file
// that an earlier input already materialized. Collisions are expected
// during merges and never abort the build; the callback only reports.
type CollisionFunc func(relPath string)

// WriteError wraps any I/O failure while streaming entries out to an
// archive. The output file is left partially written; callers must treat
// it as unusable and rebuild.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing archive %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ReadError wraps a malformed or unreadable input container.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading archive %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// isArchive reports whether path names a compressed container, by
// filename suffix. Anything else is treated as a plain file or
// directory and copied as-is.
func isArchive(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".jar") || strings.HasSuffix(lower, ".zip")
}
