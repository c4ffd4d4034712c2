// Package metrics provides Prometheus metrics for MXF parsing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// File metrics
	FilesParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mxf_files_parsed_total",
			Help: "Total number of files processed, by final state",
		},
		[]string{"state"},
	)

	ParseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mxf_parse_duration_seconds",
			Help:    "Time taken per processing stage",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"stage"},
	)

	// Metadata metrics
	SetsDecoded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mxf_metadata_sets_decoded_total",
			Help: "Total number of structural metadata sets decoded, by kind",
		},
		[]string{"kind"},
	)

	ItemsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mxf_local_set_items_skipped_total",
			Help: "Local set items skipped because their tag or UL is not modelled",
		},
	)

	PlaceholdersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mxf_placeholders_created_total",
			Help: "Placeholder nodes substituted for unresolved descriptive references",
		},
	)

	// I/O metrics
	BytesRead = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mxf_bytes_read_total",
			Help: "Bytes materialized from byte-range providers",
		},
		[]string{"provider", "storage"},
	)

	// Diagnostic metrics
	Diagnostics = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mxf_diagnostics_total",
			Help: "Diagnostics recorded, by severity and code",
		},
		[]string{"severity", "code"},
	)
)

// ObserveStage records the duration of one processing stage.
func ObserveStage(stage string, d time.Duration) {
	ParseDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// WriteTextfile writes all registered metrics in the node_exporter textfile
// format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}

// Timer is a helper for measuring duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveStage records the elapsed time under stage and restarts the timer.
func (t *Timer) ObserveStage(stage string) {
	now := time.Now()
	ObserveStage(stage, now.Sub(t.start))
	t.start = now
}
