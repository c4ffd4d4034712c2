package types

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// -----------------------------------------------------------------------------
// Diagnostic System
// -----------------------------------------------------------------------------
//
// Every parse step reports problems into an ErrorSink local to the file being
// parsed. Nothing aborts the surrounding package scan on its own: FATAL
// entries make the current file unusable and are surfaced as a FatalError
// carrying the whole log, NON_FATAL and WARNING entries are kept alongside a
// usable result.

// Severity classifies how serious a diagnostic issue is.
type Severity int

const (
	SevWarning  Severity = iota // unusual but conformant-enough data
	SevNonFatal                 // error on an optional/descriptive branch; result still usable
	SevFatal                    // the file cannot be decoded or resolved
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevNonFatal:
		return "NON_FATAL"
	case SevFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Code identifies the subsystem and class of a diagnostic.
type Code string

const (
	CodeIO                  Code = "IO"
	CodeRandomIndexPack     Code = "RANDOM_INDEX_PACK"
	CodePartition           Code = "PARTITION"
	CodeKLV                 Code = "KLV"
	CodePrimerPack          Code = "PRIMER_PACK"
	CodeMetadataDecode      Code = "METADATA_DECODE"
	CodeMissingField        Code = "MISSING_FIELD"
	CodeUnresolvedReference Code = "UNRESOLVED_REFERENCE"
	CodeCircularReference   Code = "CIRCULAR_REFERENCE"
	CodeDuplicateUID        Code = "DUPLICATE_INSTANCE_UID"
	CodeIndexTable          Code = "INDEX_TABLE"
	CodeStructure           Code = "STRUCTURE"
)

// Diagnostic represents a single issue found in a file.
type Diagnostic struct {
	Code     Code     `json:"code"`
	Severity Severity `json:"severity"`

	// Location. Offset is relative to the start of the byte range handed to
	// the reporting component; -1 when not applicable.
	Offset    int64  `json:"offset"`
	Structure string `json:"structure,omitempty"` // "RIP", "PartitionPack", "Preface", "SourceClip", ...

	Issue    string `json:"issue"`
	Expected any    `json:"expected,omitempty"`
	Actual   any    `json:"actual,omitempty"`
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", d.Severity, d.Code)
	if d.Structure != "" {
		fmt.Fprintf(&b, " [%s]", d.Structure)
	}
	if d.Offset >= 0 {
		fmt.Fprintf(&b, " at 0x%X", d.Offset)
	}
	b.WriteString(": ")
	b.WriteString(d.Issue)
	return b.String()
}

// ErrorSink accepts diagnostics and returns everything accepted so far.
type ErrorSink interface {
	Add(d Diagnostic)
	Diagnostics() []Diagnostic
}

// DiagnosticReport collects all diagnostics found while processing one file.
// It is safe for concurrent use.
type DiagnosticReport struct {
	// Metadata
	FilePath string        `json:"file_path,omitempty"`
	FileSize int64         `json:"file_size"`
	ScanTime time.Duration `json:"scan_time"`

	// Issues
	Entries []Diagnostic `json:"diagnostics"`

	// Summary statistics
	Summary DiagSummary `json:"summary"`

	mu sync.Mutex
}

// DiagSummary provides quick statistics.
type DiagSummary struct {
	Fatal    int `json:"fatal"`
	NonFatal int `json:"non_fatal"`
	Warnings int `json:"warnings"`
}

// NewDiagnosticReport creates an empty report.
func NewDiagnosticReport() *DiagnosticReport {
	return &DiagnosticReport{}
}

// Add appends a diagnostic and updates the summary.
func (r *DiagnosticReport) Add(d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Entries = append(r.Entries, d)
	switch d.Severity {
	case SevFatal:
		r.Summary.Fatal++
	case SevNonFatal:
		r.Summary.NonFatal++
	case SevWarning:
		r.Summary.Warnings++
	}
}

// Diagnostics returns a copy of the accumulated entries in report order.
func (r *DiagnosticReport) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Diagnostic, len(r.Entries))
	copy(out, r.Entries)
	return out
}

// BySeverity returns the entries of the given severity in report order.
func (r *DiagnosticReport) BySeverity(s Severity) []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Diagnostic
	for _, d := range r.Entries {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}

// ByCode returns the entries with the given code in report order.
func (r *DiagnosticReport) ByCode(c Code) []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Diagnostic
	for _, d := range r.Entries {
		if d.Code == c {
			out = append(out, d)
		}
	}
	return out
}

// HasFatal returns true if any FATAL issue was recorded.
func (r *DiagnosticReport) HasFatal() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Summary.Fatal > 0
}

// HasErrors returns true if any FATAL or NON_FATAL issue was recorded.
func (r *DiagnosticReport) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Summary.Fatal > 0 || r.Summary.NonFatal > 0
}

// HasAnyIssues returns true if any issues were found (including warnings).
func (r *DiagnosticReport) HasAnyIssues() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Entries) > 0
}

// -----------------------------------------------------------------------------
// Fatal failures
// -----------------------------------------------------------------------------

// FatalError is returned when a FATAL diagnostic terminates processing of a
// file. Diagnostics holds every entry logged up to the failure point.
type FatalError struct {
	Diagnostic  Diagnostic
	Diagnostics []Diagnostic
	Err         error
}

func (e *FatalError) Error() string {
	msg := e.Diagnostic.String()
	if n := len(e.Diagnostics); n > 1 {
		msg += fmt.Sprintf(" (%d diagnostics logged)", n)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FatalError) Unwrap() error { return e.Err }

// EnsureSink returns s, or a fresh report when s is nil.
func EnsureSink(s ErrorSink) ErrorSink {
	if s == nil {
		return NewDiagnosticReport()
	}
	return s
}

// Fatal records d (forced to SevFatal) into sink and returns the FatalError
// that carries the sink's full log.
func Fatal(sink ErrorSink, d Diagnostic, cause error) *FatalError {
	d.Severity = SevFatal
	sink.Add(d)
	return &FatalError{Diagnostic: d, Diagnostics: sink.Diagnostics(), Err: cause}
}

// -----------------------------------------------------------------------------
// Output Formatters
// -----------------------------------------------------------------------------

// FormatJSON returns the report as formatted JSON (2-space indentation).
func (r *DiagnosticReport) FormatJSON() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatText returns a human-readable text report.
func (r *DiagnosticReport) FormatText() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder

	b.WriteString("=" + strings.Repeat("=", 78) + "\n")
	b.WriteString("MXF Diagnostic Report\n")
	b.WriteString("=" + strings.Repeat("=", 78) + "\n\n")

	if r.FilePath != "" {
		b.WriteString(fmt.Sprintf("File:      %s\n", r.FilePath))
	}
	b.WriteString(fmt.Sprintf("Size:      %d bytes\n", r.FileSize))
	b.WriteString(fmt.Sprintf("Scan time: %v\n\n", r.ScanTime))

	b.WriteString("SUMMARY\n")
	b.WriteString(strings.Repeat("-", 79) + "\n")
	b.WriteString(fmt.Sprintf("  Fatal:     %d\n", r.Summary.Fatal))
	b.WriteString(fmt.Sprintf("  Non-fatal: %d\n", r.Summary.NonFatal))
	b.WriteString(fmt.Sprintf("  Warnings:  %d\n\n", r.Summary.Warnings))

	if len(r.Entries) == 0 {
		b.WriteString("No issues found.\n")
		return b.String()
	}

	b.WriteString("DIAGNOSTICS\n")
	b.WriteString(strings.Repeat("-", 79) + "\n\n")

	for _, severity := range []Severity{SevFatal, SevNonFatal, SevWarning} {
		var diags []Diagnostic
		for _, d := range r.Entries {
			if d.Severity == severity {
				diags = append(diags, d)
			}
		}
		if len(diags) == 0 {
			continue
		}

		b.WriteString(fmt.Sprintf("%s (%d)\n", severity, len(diags)))
		b.WriteString(strings.Repeat("~", 79) + "\n")

		for i, d := range diags {
			b.WriteString(fmt.Sprintf("\n%d. [%s/%s]", i+1, d.Code, d.Structure))
			if d.Offset >= 0 {
				b.WriteString(fmt.Sprintf(" at offset 0x%X", d.Offset))
			}
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("   %s\n", d.Issue))
			if d.Expected != nil {
				b.WriteString(fmt.Sprintf("   Expected: %v\n", d.Expected))
			}
			if d.Actual != nil {
				b.WriteString(fmt.Sprintf("   Actual:   %v\n", d.Actual))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatTextCompact returns a compact one-line-per-issue text format sorted
// by offset.
func (r *DiagnosticReport) FormatTextCompact() string {
	r.mu.Lock()
	byOffset := make([]Diagnostic, len(r.Entries))
	copy(byOffset, r.Entries)
	r.mu.Unlock()

	sort.SliceStable(byOffset, func(i, j int) bool {
		return byOffset[i].Offset < byOffset[j].Offset
	})

	var b strings.Builder
	for _, d := range byOffset {
		b.WriteString(fmt.Sprintf("0x%08X [%s/%s/%s] %s\n",
			max(d.Offset, 0), d.Severity, d.Code, d.Structure, d.Issue))
	}
	if len(byOffset) == 0 {
		b.WriteString("No issues found.\n")
	}
	return b.String()
}
