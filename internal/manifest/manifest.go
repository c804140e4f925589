// Package manifest builds and parses jar manifest headers. A manifest is
// the first entry of every archive this tool writes, so a loader can read
// it without scanning the rest of the container.
package manifest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Path is the entry name the manifest is stored under inside an archive.
const Path = "META-INF/MANIFEST.MF"

// Core attribute names written by this tool.
const (
	AttrVersion   = "Manifest-Version"
	AttrCreatedBy = "Created-By"
	AttrJdkSpec   = "Build-Jdk-Spec"
	AttrMainClass = "Main-Class"
)

const (
	version   = "1.0"
	createdBy = "exoscale tools.build"
	jdkSpec   = "17"
)

var (
	ErrInvalidAttributeName  = errors.New("invalid attribute name")
	ErrInvalidAttributeValue = errors.New("invalid attribute value")
)

// Manifest is an immutable attribute header. Construct one with Build or
// Parse; it is never mutated after the archive header has been emitted.
type Manifest struct {
	attrs map[string]string
}

// Attributes returns the core attribute set for an archive, with an
// optional Main-Class entry when mainClass is non-empty.
func Attributes(mainClass string) map[string]string {
	attrs := map[string]string{
		AttrVersion:   version,
		AttrCreatedBy: createdBy,
		AttrJdkSpec:   jdkSpec,
	}
	if mainClass != "" {
		attrs[AttrMainClass] = mainClass
	}
	return attrs
}

// Build validates attrs and assembles them into a Manifest. Attribute
// names must be literal tokens: non-empty, no colon, no CR or LF. Values
// must be single-line. Construction is pure; nothing is written anywhere.
func Build(attrs map[string]string) (*Manifest, error) {
	out := make(map[string]string, len(attrs))
	for name, value := range attrs {
		if name == "" || strings.ContainsAny(name, ":\r\n") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAttributeName, name)
		}
		if strings.ContainsAny(value, "\r\n") {
			return nil, fmt.Errorf("%w: attribute %q", ErrInvalidAttributeValue, name)
		}
		out[name] = value
	}
	return &Manifest{attrs: out}, nil
}

// Get returns the value of the named attribute, or "" when absent.
func (m *Manifest) Get(name string) string {
	return m.attrs[name]
}

// Names returns all attribute names in serialization order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.attrs))
	for name := range m.attrs {
		if name == AttrVersion {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	if _, ok := m.attrs[AttrVersion]; ok {
		names = append([]string{AttrVersion}, names...)
	}
	return names
}

// WriteTo serializes the manifest as newline-separated "Name: value"
// lines with Manifest-Version first and the remaining attributes in
// sorted order, so identical inputs always produce identical bytes.
func (m *Manifest) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, name := range m.Names() {
		fmt.Fprintf(&buf, "%s: %s\r\n", name, m.attrs[name])
	}
	buf.WriteString("\r\n")
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// Parse reads a serialized manifest back into attribute form. Blank
// lines terminate the main section; continuation lines are not produced
// by this tool and are rejected as malformed.
func Parse(r io.Reader) (*Manifest, error) {
	attrs := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("malformed manifest line %q", line)
		}
		attrs[name] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Build(attrs)
}
