package jar

import (
	"fmt"

	"github.com/klauspost/compress/zip"

	"github.com/exoscale/tools.build/internal/manifest"
)

// Assemble flattens a primary jar plus its dependency archives into one
// standalone jar at output, using stagingDir as the merge workspace.
//
// The primary jar's manifest is reused verbatim as the output manifest;
// no attribute merging happens across inputs. Inputs are exploded into
// the staging tree in order with the primary last, so under the
// exploder's overwrite policy the primary artifact's own files win any
// collision against same-named dependency files. That tie-break is
// deliberate: dependency collisions are common, and the build's own
// output must take precedence deterministically instead of depending on
// the traversal order of the dependency set.
//
// Any explode or write failure aborts the whole assembly. The staging
// tree stays on disk for postmortem inspection; output is absent or
// partial and callers recover by re-running clean, build, uber.
func Assemble(primary string, deps []string, output, stagingDir string, report CollisionFunc) error {
	m, err := ReadManifest(primary)
	if err != nil {
		return err
	}

	inputs := make([]string, 0, len(deps)+1)
	inputs = append(inputs, deps...)
	inputs = append(inputs, primary)

	for _, in := range inputs {
		if err := Explode(in, stagingDir, report); err != nil {
			return err
		}
	}

	return Write(output, m, stagingDir)
}

// ReadManifest extracts the manifest header from an archive without
// reading any other entry.
func ReadManifest(path string) (*manifest.Manifest, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer r.Close()

	for _, entry := range r.File {
		if entry.Name != manifest.Path {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		defer rc.Close()

		m, err := manifest.Parse(rc)
		if err != nil {
			return nil, &ReadError{Path: path, Err: err}
		}
		return m, nil
	}
	return nil, &ReadError{Path: path, Err: fmt.Errorf("no %s entry", manifest.Path)}
}
