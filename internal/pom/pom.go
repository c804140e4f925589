// Package pom synchronizes the Maven project descriptor into the class
// tree so it ships inside the jar under META-INF/maven.
package pom

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"
)

const pomTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <groupId>{{.Group}}</groupId>
  <artifactId>{{.Artifact}}</artifactId>
  <version>{{.Version}}</version>
</project>
`

const propertiesTemplate = `groupId={{.Group}}
artifactId={{.Artifact}}
version={{.Version}}
`

type coordinates struct {
	Group    string
	Artifact string
	Version  string
}

// Sync places pom.xml and pom.properties under
// classDir/META-INF/maven/<group>/<artifact>/. When srcPom names an
// existing file it is copied verbatim; otherwise a minimal descriptor
// is generated from the coordinates.
func Sync(srcPom, classDir, group, artifact, version string) error {
	dir := filepath.Join(classDir, "META-INF", "maven", group, artifact)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating descriptor directory: %w", err)
	}

	coords := coordinates{Group: group, Artifact: artifact, Version: version}

	pomPath := filepath.Join(dir, "pom.xml")
	if srcPom != "" {
		if _, err := os.Stat(srcPom); err == nil {
			if err := copyFile(srcPom, pomPath); err != nil {
				return err
			}
			return writeTemplate(filepath.Join(dir, "pom.properties"), propertiesTemplate, coords)
		}
	}

	if err := writeTemplate(pomPath, pomTemplate, coords); err != nil {
		return err
	}
	return writeTemplate(filepath.Join(dir, "pom.properties"), propertiesTemplate, coords)
}

func writeTemplate(path, text string, coords coordinates) error {
	tmpl, err := template.New(filepath.Base(path)).Parse(text)
	if err != nil {
		return fmt.Errorf("parsing template for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, coords); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
