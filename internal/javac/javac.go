// Package javac invokes the Java compiler as an external black box. The
// build engine only needs "compile these sources into that directory";
// compiler internals stay behind this boundary.
package javac

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/exoscale/tools.build/internal/collect"
)

// Compiler turns a source set into compiled classes under destDir.
type Compiler interface {
	Compile(srcDirs, classpath []string, destDir string, opts []string) error
}

// CompileError wraps a compiler invocation failure.
type CompileError struct {
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compilation failed: %v", e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Exec shells out to javac. Compiler diagnostics stream straight
// through to the configured writers.
type Exec struct {
	// Command overrides the compiler binary, "javac" by default.
	Command string

	Stdout io.Writer
	Stderr io.Writer
}

// Compile gathers every .java file under srcDirs and compiles them into
// destDir. A source set with no .java files is a successful no-op; the
// compiler is not invoked at all.
func (e *Exec) Compile(srcDirs, classpath []string, destDir string, opts []string) error {
	sources := collectSources(srcDirs)
	if len(sources) == 0 {
		return nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return &CompileError{Err: err}
	}

	cmd := exec.Command(e.command(), buildArgs(sources, classpath, destDir, opts)...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return &CompileError{Err: err}
	}
	return nil
}

func (e *Exec) command() string {
	if e.Command != "" {
		return e.Command
	}
	return "javac"
}

func collectSources(srcDirs []string) []string {
	var sources []string
	for _, dir := range srcDirs {
		for _, rel := range collect.Files(dir, ".java") {
			sources = append(sources, filepath.Join(dir, filepath.FromSlash(rel)))
		}
	}
	return sources
}

func buildArgs(sources, classpath []string, destDir string, opts []string) []string {
	args := append([]string{}, opts...)
	args = append(args, "-d", destDir)
	if len(classpath) > 0 {
		args = append(args, "-cp", strings.Join(classpath, string(os.PathListSeparator)))
	}
	return append(args, sources...)
}
