package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout replaces os.Stdout with a pipe, calls f, then returns the
// captured output and restores os.Stdout. It is NOT safe for parallel use
// because os.Stdout is a package-level variable.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		io.Copy(&buf, r)
		close(done)
	}()

	f()

	w.Close()
	<-done
	os.Stdout = orig
	r.Close()
	return buf.String()
}

func TestFormatJSON(t *testing.T) {
	type sample struct {
		Day  string `json:"day"`
		Area string `json:"area"`
	}
	v := sample{Day: "2025-04-01", Area: "Central"}

	got := captureStdout(t, func() { formatJSON(v) })

	var out sample
	if err := json.Unmarshal([]byte(got), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, got)
	}
	if out.Day != "2025-04-01" {
		t.Errorf("day: got %q, want %q", out.Day, "2025-04-01")
	}
	if out.Area != "Central" {
		t.Errorf("area: got %q, want %q", out.Area, "Central")
	}
	if !strings.Contains(got, "\n") {
		t.Errorf("expected indented JSON but got: %s", got)
	}
}

func TestFormatTable(t *testing.T) {
	headers := []string{"day", "area", "closeness"}
	rows := [][]string{
		{"2025-04-01", "Central", "1.0000"},
		{"2025-04-02", "Van Nuys", "0.5000"},
	}

	got := captureStdout(t, func() { formatTable(headers, rows) })
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	// Header, separator, two data rows.
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), got)
	}

	for _, h := range headers {
		if !strings.Contains(lines[0], h) {
			t.Errorf("header line missing %q: %s", h, lines[0])
		}
	}

	sep := strings.TrimSpace(lines[1])
	for _, ch := range sep {
		if ch != '-' && ch != ' ' {
			t.Errorf("separator contains unexpected char %q: %s", ch, lines[1])
		}
	}

	if !strings.Contains(lines[2], "Central") {
		t.Errorf("row 0 missing area: %s", lines[2])
	}
	if !strings.Contains(lines[3], "Van Nuys") {
		t.Errorf("row 1 missing area: %s", lines[3])
	}
}
