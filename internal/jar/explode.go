package jar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/exoscale/tools.build/internal/manifest"
)

// transferBufSize is the fixed buffer used when draining compressed
// entry streams to disk.
const transferBufSize = 32 * 1024

// Explode materializes src under outDir. A jar or zip is streamed entry
// by entry in the container's index order; anything else is copied
// as-is (a directory copies its whole tree, a file copies alone). When
// a file entry lands on a path an earlier input already wrote, report
// is called with the relative path and the new bytes overwrite the old
// ones — collisions never fail the build. Manifest entries from input
// archives are skipped: the merged output reuses the primary manifest.
//
// A mid-stream failure leaves outDir partially populated. The staging
// tree is disposable and rebuilt per invocation, so no rollback is
// attempted.
func Explode(src, outDir string, report CollisionFunc) error {
	if isArchive(src) {
		return explodeArchive(src, outDir, report)
	}
	return copyPlain(src, outDir, report)
}

func explodeArchive(src, outDir string, report CollisionFunc) error {
	r, err := zip.OpenReader(src)
	if err != nil {
		return &ReadError{Path: src, Err: err}
	}
	defer r.Close()

	buf := make([]byte, transferBufSize)
	for _, entry := range r.File {
		name := entry.Name
		if name == manifest.Path {
			continue
		}

		target, err := entryTarget(outDir, name)
		if err != nil {
			return &ReadError{Path: src, Err: err}
		}

		if strings.HasSuffix(name, "/") {
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", target, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", name, err)
		}
		if _, err := os.Stat(target); err == nil && report != nil {
			report(name)
		}

		if err := writeEntry(entry, target, buf); err != nil {
			return &ReadError{Path: src, Err: err}
		}
	}
	return nil
}

func writeEntry(entry *zip.File, target string, buf []byte) error {
	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.CopyBuffer(f, rc, buf); err != nil {
		return err
	}
	return f.Close()
}

// entryTarget resolves an entry name under outDir, rejecting names that
// would escape it.
func entryTarget(outDir, name string) (string, error) {
	target := filepath.Join(outDir, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(outDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("entry %q escapes output directory", name)
	}
	return target, nil
}

// copyPlain copies a non-archive classpath item into outDir: a
// directory contributes its contents, a lone file contributes itself
// under its base name.
func copyPlain(src, outDir string, report CollisionFunc) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	if !info.IsDir() {
		return copyFile(src, filepath.Join(outDir, filepath.Base(src)), filepath.Base(src), report)
	}

	return filepath.Walk(src, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil || rel == "." {
			return err
		}
		target := filepath.Join(outDir, rel)
		if fi.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target, filepath.ToSlash(rel), report)
	})
}

func copyFile(src, target, rel string, report CollisionFunc) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if _, err := os.Stat(target); err == nil && report != nil {
		report(rel)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", rel, err)
	}
	return out.Close()
}
