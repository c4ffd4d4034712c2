package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config represents the mxfctl configuration file
// (~/.config/mxfctl/config.yaml). Pointer fields distinguish "not set" from
// zero values.
type Config struct {
	MaxInMemoryRange *int64 `yaml:"max_in_memory_range"`
	TempDir          string `yaml:"temp_dir"`
	Concurrency      *int   `yaml:"concurrency"`
	Strict           *bool  `yaml:"strict"`

	// Output
	LogLevel        string `yaml:"log_level"`
	LogFormat       string `yaml:"log_format"`
	LogDir          string `yaml:"log_dir"`
	MetricsTextfile string `yaml:"metrics_textfile"`

	S3 struct {
		Region       string `yaml:"region"`
		Endpoint     string `yaml:"endpoint"`
		UsePathStyle *bool  `yaml:"use_path_style"`
	} `yaml:"s3"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mxfctl", "config.yaml")
}

// loadConfig reads the config file at path, or at the default location when
// path is empty. A missing default file yields a zero Config; a missing
// explicit file is an error.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = configPath()
	}
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyConfig copies config file values into the flag variables whose flags
// were not set explicitly.
func applyConfig(cmd *cobra.Command, cfg Config) {
	changed := cmd.Flags().Changed
	if cfg.MaxInMemoryRange != nil && !changed("max-in-memory") {
		maxInMemory = *cfg.MaxInMemoryRange
	}
	if cfg.TempDir != "" && !changed("temp-dir") {
		tempDir = cfg.TempDir
	}
	if cfg.Concurrency != nil && !changed("concurrency") {
		concurrency = *cfg.Concurrency
	}
	if cfg.Strict != nil && !changed("strict") {
		strict = *cfg.Strict
	}
	if cfg.LogLevel != "" && !changed("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !changed("log-format") {
		logFormat = cfg.LogFormat
	}
	if cfg.LogDir != "" && !changed("log-dir") {
		logDir = cfg.LogDir
	}
	if cfg.MetricsTextfile != "" && !changed("metrics-textfile") {
		metricsTextfile = cfg.MetricsTextfile
	}
	if cfg.S3.Region != "" && !changed("s3-region") {
		s3Opts.Region = cfg.S3.Region
	}
	if cfg.S3.Endpoint != "" && !changed("s3-endpoint") {
		s3Opts.Endpoint = cfg.S3.Endpoint
	}
	if cfg.S3.UsePathStyle != nil && !changed("s3-path-style") {
		s3Opts.UsePathStyle = *cfg.S3.UsePathStyle
	}
}
