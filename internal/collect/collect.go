// Package collect enumerates files under a directory root for the jar
// writer and the compiler front-end. Paths are returned relative to the
// root with forward-slash separators.
package collect

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Files walks root recursively and returns the relative paths of all
// regular files whose name ends in suffix. An empty suffix matches every
// file. A missing or empty root yields an empty slice, not an error:
// callers treat "nothing to collect" as a normal outcome.
func Files(root, suffix string) []string {
	return walk(root, false, suffix)
}

// Entries walks root recursively and returns the relative paths of all
// files and directories beneath it. The root itself (the empty relative
// path) is never included.
func Entries(root string) []string {
	return walk(root, true, "")
}

func walk(root string, includeDirs bool, suffix string) []string {
	var out []string

	if _, err := os.Stat(root); err != nil {
		return out
	}

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if includeDirs {
				out = append(out, rel)
			}
			return nil
		}
		if suffix == "" || strings.HasSuffix(d.Name(), suffix) {
			out = append(out, rel)
		}
		return nil
	})

	return out
}
