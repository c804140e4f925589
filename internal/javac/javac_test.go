package javac

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileNoSourcesIsNoOp(t *testing.T) {
	c := &Exec{Command: "/does/not/exist"}

	// Empty and missing source dirs never reach the compiler binary.
	err := c.Compile([]string{t.TempDir(), "no-such-dir"}, nil, t.TempDir(), nil)
	assert.NoError(t, err)
}

func TestCompileFailureWrapped(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "Main.java"), []byte("class Main {}"), 0644))

	c := &Exec{Command: "false", Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := c.Compile([]string{srcDir}, nil, t.TempDir(), nil)

	var compileErr *CompileError
	require.ErrorAs(t, err, &compileErr)
}

func TestCompileInvokesCommand(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "com", "example"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(srcDir, "com", "example", "Main.java"),
		[]byte("package com.example; class Main {}"), 0644))

	destDir := filepath.Join(t.TempDir(), "classes")
	var out bytes.Buffer

	// echo stands in for javac: success, arguments visible on stdout.
	c := &Exec{Command: "echo", Stdout: &out, Stderr: &bytes.Buffer{}}
	err := c.Compile([]string{srcDir}, []string{"dep.jar"}, destDir, []string{"-Xlint"})
	require.NoError(t, err)

	printed := out.String()
	assert.Contains(t, printed, "-d "+destDir)
	assert.Contains(t, printed, "dep.jar")
	assert.Contains(t, printed, "-Xlint")
	assert.Contains(t, printed, filepath.Join("com", "example", "Main.java"))

	// destDir is created before the compiler runs.
	info, err := os.Stat(destDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBuildArgs(t *testing.T) {
	args := buildArgs(
		[]string{"src/Main.java"},
		[]string{"a.jar", "b.jar"},
		"target/classes",
		[]string{"--release", "17"},
	)

	assert.Equal(t, []string{
		"--release", "17",
		"-d", "target/classes",
		"-cp", "a.jar" + string(os.PathListSeparator) + "b.jar",
		"src/Main.java",
	}, args)
}

func TestBuildArgsNoClasspath(t *testing.T) {
	args := buildArgs([]string{"Main.java"}, nil, "out", nil)
	assert.Equal(t, []string{"-d", "out", "Main.java"}, args)
}

func TestDefaultCommand(t *testing.T) {
	assert.Equal(t, "javac", (&Exec{}).command())
	assert.Equal(t, "ecj", (&Exec{Command: "ecj"}).command())
}
