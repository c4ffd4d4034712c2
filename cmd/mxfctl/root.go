package main

import (
	"context"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/Netflix/photon-sub001/internal/logger"
	"github.com/Netflix/photon-sub001/internal/metrics"
	"github.com/Netflix/photon-sub001/pkg/byterange"
	"github.com/Netflix/photon-sub001/pkg/mxf"
)

var (
	// Global flags
	verbose         bool
	quiet           bool
	jsonOut         bool
	strict          bool
	configFile      string
	logLevel        string
	logFormat       string
	logDir          string
	metricsTextfile string
	concurrency     int
	maxInMemory     int64
	tempDir         string
	s3Opts          byterange.S3Options

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "mxfctl",
	Short: "Inspect the structural metadata of MXF track files",
	Long: `mxfctl locates the partitions of MXF files, decodes their header
metadata and resolves the structural reference graph, reporting every
diagnostic found along the way. Files may be local paths or s3://bucket/key
URIs.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	flags.BoolVar(&jsonOut, "json", false, "Output in JSON format")
	flags.BoolVar(&strict, "strict", false, "Treat NON_FATAL diagnostics as fatal")
	flags.StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/mxfctl/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	flags.StringVar(&logDir, "log-dir", "", "Write logs to dated files in this directory instead of stderr")
	flags.StringVar(&metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file on exit")
	flags.IntVar(&concurrency, "concurrency", 0, "Files processed in parallel (0 = number of CPUs)")
	flags.Int64Var(&maxInMemory, "max-in-memory", 0, "Largest byte range held in memory (0 = 64 MiB)")
	flags.StringVar(&tempDir, "temp-dir", "", "Directory for spooled remote ranges")
	flags.StringVar(&s3Opts.Region, "s3-region", "", "AWS region for s3:// URIs")
	flags.StringVar(&s3Opts.Endpoint, "s3-endpoint", "", "Custom S3 endpoint")
	flags.BoolVar(&s3Opts.UsePathStyle, "s3-path-style", false, "Use path-style S3 addressing")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	applyConfig(cmd, cfg)

	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logCloser, err = logger.Init(logger.Options{
		Enabled: true,
		LogDir:  logDir,
		Level:   level,
		Format:  logFormat,
	})
	return err
}

func teardown() error {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
	if metricsTextfile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(metricsTextfile); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

// options builds the library options from the flags.
func options() mxf.Options {
	return mxf.Options{
		MaxInMemoryRange: maxInMemory,
		TempDir:          tempDir,
		Strict:           strict,
		Concurrency:      concurrency,
		S3:               s3Opts,
	}
}

func openFile(ctx context.Context, path string) (*mxf.File, error) {
	printVerbose("Opening file: %s\n", path)
	f, err := mxf.Open(ctx, path, options())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
