package mxf

import (
	"log/slog"

	"github.com/Netflix/photon-sub001/internal/metrics"
	"github.com/Netflix/photon-sub001/pkg/types"
)

// loggingSink records diagnostics into a report, mirrors them to the logger
// and counts them.
type loggingSink struct {
	report *types.DiagnosticReport
	log    *slog.Logger
}

func (s *loggingSink) Add(d types.Diagnostic) {
	s.report.Add(d)
	metrics.Diagnostics.WithLabelValues(d.Severity.String(), string(d.Code)).Inc()

	attrs := []any{
		"code", d.Code,
		"structure", d.Structure,
		"offset", d.Offset,
		"issue", d.Issue,
	}
	if d.Severity == types.SevFatal {
		s.log.Error("fatal diagnostic", attrs...)
		return
	}
	s.log.Warn("diagnostic", append(attrs, "severity", d.Severity)...)
}

func (s *loggingSink) Diagnostics() []types.Diagnostic { return s.report.Diagnostics() }
