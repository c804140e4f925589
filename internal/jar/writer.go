package jar

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/exoscale/tools.build/internal/collect"
	"github.com/exoscale/tools.build/internal/manifest"
)

// Write streams the tree under rootDir into a jar at outputFile. The
// serialized manifest is the first entry, ahead of everything else, so
// loaders can read it without scanning the container. Entries follow in
// collector traversal order: directories as "path/" entries without a
// body, files byte-for-byte. The root itself is never written. No
// sorting or deduplication happens here; merge deduplication is the
// exploder's job and has already run in the uber case.
//
// Entry timestamps are left at their zero value so identical inputs
// produce byte-identical archives.
func Write(outputFile string, m *manifest.Manifest, rootDir string) error {
	out, err := os.Create(outputFile)
	if err != nil {
		return &WriteError{Path: outputFile, Err: err}
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	mw, err := zw.CreateHeader(&zip.FileHeader{
		Name:   manifest.Path,
		Method: zip.Deflate,
	})
	if err != nil {
		return &WriteError{Path: outputFile, Err: err}
	}
	if _, err := m.WriteTo(mw); err != nil {
		return &WriteError{Path: outputFile, Err: err}
	}

	for _, rel := range collect.Entries(rootDir) {
		if err := addEntry(zw, rootDir, rel); err != nil {
			return &WriteError{Path: outputFile, Err: err}
		}
	}

	if err := zw.Close(); err != nil {
		return &WriteError{Path: outputFile, Err: err}
	}
	if err := out.Close(); err != nil {
		return &WriteError{Path: outputFile, Err: err}
	}
	return nil
}

func addEntry(zw *zip.Writer, rootDir, rel string) error {
	full := filepath.Join(rootDir, filepath.FromSlash(rel))
	info, err := os.Stat(full)
	if err != nil {
		return err
	}

	if info.IsDir() {
		name := rel
		if !strings.HasSuffix(name, "/") {
			name += "/"
		}
		_, err := zw.CreateHeader(&zip.FileHeader{Name: name})
		return err
	}

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   rel,
		Method: zip.Deflate,
	})
	if err != nil {
		return err
	}

	f, err := os.Open(full)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}
