package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/Netflix/photon-sub001/internal/format"
	"github.com/Netflix/photon-sub001/internal/testutil"
	"github.com/Netflix/photon-sub001/metadata"
	"github.com/Netflix/photon-sub001/pkg/byterange"
)

// resetFlags restores the global flag variables between tests.
func resetFlags() {
	verbose, quiet, jsonOut, strict = false, false, false, false
	configFile, logLevel, logFormat, logDir, metricsTextfile = "", "warn", "text", "", ""
	concurrency, maxInMemory, tempDir = 0, 0, ""
	s3Opts = byterange.S3Options{}
	dumpKind, dumpTree, dumpDepth = "", false, 0
}

// minimalFile writes the minimal test file and returns its path.
func minimalFile(t *testing.T) string {
	t.Helper()
	return testutil.WriteFile(t, "minimal.mxf", testutil.MinimalFile())
}

// danglingSubDescriptorFile writes a file whose descriptor lists a
// sub-descriptor that is not in the header metadata.
func danglingSubDescriptorFile(t *testing.T) string {
	t.Helper()
	b := testutil.Minimal(testutil.F(metadata.ElemSubDescriptors, testutil.UIDs(testutil.UID(77))))
	data := testutil.File(
		testutil.Partition{Kind: format.PartitionHeader, HeaderMetadata: b.HeaderMetadata()},
		testutil.Partition{Kind: format.PartitionFooter},
	)
	return testutil.WriteFile(t, "dangling.mxf", data)
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	// Drain concurrently so large outputs do not block on the pipe buffer.
	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	return string(<-done), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
