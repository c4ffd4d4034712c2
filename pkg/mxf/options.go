package mxf

import (
	"log/slog"
	"runtime"

	"github.com/Netflix/photon-sub001/pkg/byterange"
)

// Options controls how files are read. The zero value is ready to use.
type Options struct {
	// MaxInMemoryRange is the largest byte range read into process memory.
	// Larger ranges are memory-mapped from the file or spooled to TempDir.
	// Zero selects byterange.DefaultMaxInMemory.
	MaxInMemoryRange int64

	// TempDir holds spools for remote ranges. Empty uses os.TempDir.
	TempDir string

	// Logger receives per-file progress and diagnostics. Nil uses the
	// package logger.
	Logger *slog.Logger

	// Strict treats NON_FATAL diagnostics as fatal when deciding whether a
	// file is valid.
	Strict bool

	// Concurrency bounds ParseMany. Zero uses runtime.NumCPU.
	Concurrency int

	// S3 configures access to s3:// URIs.
	S3 byterange.S3Options
}

func (o Options) rangeOptions() byterange.Options {
	return byterange.Options{MaxInMemory: o.MaxInMemoryRange, TempDir: o.TempDir}
}

func (o Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.NumCPU()
}
