package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "target", cfg.TargetDir)
	assert.Equal(t, []string{"src/main/java"}, cfg.SourceDirs)
	assert.Equal(t, []string{"src/main/resources"}, cfg.ResourceDirs)
	assert.Equal(t, "pom.xml", cfg.Pom)
	assert.Empty(t, cfg.Lib)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolsbuild.yaml")
	content := `lib: com.example/app
version: 1.0.0
main_class: com.example.Main
javac_opts:
  - --release
  - "17"
deps:
  org.slf4j/slf4j-api:
    - /repo/slf4j-api-2.0.9.jar
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "com.example/app", cfg.Lib)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "com.example.Main", cfg.MainClass)
	assert.Equal(t, []string{"--release", "17"}, cfg.JavacOpts)
	assert.Equal(t, []string{"/repo/slf4j-api-2.0.9.jar"}, cfg.Deps["org.slf4j/slf4j-api"])
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Lib: "com.example/app", Version: "1.0.0", TargetDir: "target"}
	assert.NoError(t, Validate(cfg))
}

func TestValidateMissingLib(t *testing.T) {
	err := Validate(&Config{Version: "1.0.0", TargetDir: "target"})
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "lib", cfgErr.Field)
}

func TestValidateMissingVersion(t *testing.T) {
	err := Validate(&Config{Lib: "com.example/app", TargetDir: "target"})
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "version", cfgErr.Field)
}
