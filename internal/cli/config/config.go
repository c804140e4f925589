// Package config loads build parameters from toolsbuild.yaml, the
// environment, and defaults.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the build pipeline needs: the library
// coordinate, source layout, compiler options, and the resolved
// dependency mapping (dependency id to ordered file paths). Dependency
// resolution happens outside this tool; the config carries its result.
type Config struct {
	Lib          string              `mapstructure:"lib"`
	Version      string              `mapstructure:"version"`
	MainClass    string              `mapstructure:"main_class"`
	TargetDir    string              `mapstructure:"target_dir"`
	SourceDirs   []string            `mapstructure:"source_dirs"`
	ResourceDirs []string            `mapstructure:"resource_dirs"`
	JavacOpts    []string            `mapstructure:"javac_opts"`
	Pom          string              `mapstructure:"pom"`
	Deps         map[string][]string `mapstructure:"deps"`
}

// ConfigError reports a missing or invalid build parameter. It is
// raised before any pipeline stage runs.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration: %s %s", e.Field, e.Msg)
}

// Load reads the configuration. When file is non-empty it names the
// exact config file; otherwise toolsbuild.yaml is searched for in the
// working directory. Environment variables override file values.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("target_dir", "target")
	v.SetDefault("source_dirs", []string{"src/main/java"})
	v.SetDefault("resource_dirs", []string{"src/main/resources"})
	v.SetDefault("pom", "pom.xml")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("toolsbuild")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TOOLSBUILD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file found - defaults plus flags and environment.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate checks required parameters. The CLI calls it after flag
// overrides have been applied, before any pipeline stage runs.
func Validate(cfg *Config) error {
	if cfg.Lib == "" {
		return &ConfigError{Field: "lib", Msg: "is required (group/artifact coordinate)"}
	}
	if cfg.Version == "" {
		return &ConfigError{Field: "version", Msg: "is required"}
	}
	if cfg.TargetDir == "" {
		return &ConfigError{Field: "target_dir", Msg: "must not be empty"}
	}
	return nil
}
