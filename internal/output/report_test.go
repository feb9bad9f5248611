package output

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func noColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func sampleReport() *MatchReport {
	mtime := time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)
	r := &MatchReport{}
	r.Add(MatchEntry{Path: "image.jpg", Size: 1536, ModTime: mtime, Result: ResultAccept})
	r.Add(MatchEntry{Path: "image.php.jpg", Size: 10, ModTime: mtime, Result: ResultReject})
	r.Add(MatchEntry{Path: "missing.jpg", Err: errors.New("no such file")})
	return r
}

func TestMatchReportCounts(t *testing.T) {
	r := sampleReport()

	if got := r.Count(ResultAccept); got != 1 {
		t.Errorf("accepted = %d, want 1", got)
	}
	if got := r.Count(ResultReject); got != 1 {
		t.Errorf("rejected = %d, want 1", got)
	}
	if got := r.Count(ResultError); got != 1 {
		t.Errorf("errors = %d, want 1", got)
	}
	if r.AllAccepted() {
		t.Error("AllAccepted() = true, want false")
	}
}

func TestMatchReportAddMarksErrors(t *testing.T) {
	r := &MatchReport{}
	if got := r.Add(MatchEntry{Path: "x", Result: ResultAccept, Err: errors.New("boom")}); got != ResultError {
		t.Errorf("Add() = %s, want %s", got, ResultError)
	}
}

func TestMatchReportAllAcceptedEmpty(t *testing.T) {
	r := &MatchReport{}
	if !r.AllAccepted() {
		t.Error("empty report should count as all accepted")
	}
}

func TestMatchReportFormatText(t *testing.T) {
	noColor(t)
	out := sampleReport().FormatText()

	for _, want := range []string{
		"NAME", "SIZE", "MODIFIED", "RESULT",
		"image.jpg", "1.5 KiB", "2021-01-01 12:00:00", "ACCEPT",
		"image.php.jpg", "REJECT",
		"missing.jpg", "ERROR: no such file",
		"1 accepted, 1 rejected, 1 errors",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	fields := strings.Fields(lines[3])
	if len(fields) < 3 || fields[1] != "-" || fields[2] != "-" {
		t.Errorf("missing stat info should render as dashes: %q", lines[3])
	}
}

func TestMatchReportFormatTextColor(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = old })

	out := sampleReport().FormatText()
	if !strings.Contains(out, "\x1b[32mACCEPT") {
		t.Errorf("ACCEPT should be green:\n%q", out)
	}
	if !strings.Contains(out, "\x1b[31mREJECT") {
		t.Errorf("REJECT should be red:\n%q", out)
	}
}

func TestMatchReportFormatJSON(t *testing.T) {
	data, err := sampleReport().FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON error: %v", err)
	}

	var parsed struct {
		Results     []map[string]any `json:"results"`
		Accepted    int              `json:"accepted"`
		Rejected    int              `json:"rejected"`
		Errors      int              `json:"errors"`
		AllAccepted bool             `json:"all_accepted"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if parsed.Accepted != 1 || parsed.Rejected != 1 || parsed.Errors != 1 || parsed.AllAccepted {
		t.Errorf("unexpected summary: %+v", parsed)
	}
	if len(parsed.Results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(parsed.Results))
	}

	first := parsed.Results[0]
	if first["path"] != "image.jpg" || first["accepted"] != true {
		t.Errorf("first = %v", first)
	}
	if first["size"] != float64(1536) {
		t.Errorf("size = %v, want 1536", first["size"])
	}
	if first["modified"] != "2021-01-01T12:00:00Z" {
		t.Errorf("modified = %v", first["modified"])
	}

	last := parsed.Results[2]
	if last["error"] != "no such file" {
		t.Errorf("error = %v", last["error"])
	}
	if _, ok := last["size"]; ok {
		t.Error("size should be omitted when the file could not be read")
	}
}

func TestFormatOutput(t *testing.T) {
	noColor(t)
	r := sampleReport()

	text, err := FormatOutput(r, FormatText)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(text, "NAME") {
		t.Errorf("text output should start with the header, got %q", text)
	}

	js, err := FormatOutput(r, FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid([]byte(js)) {
		t.Errorf("json output is not valid JSON: %s", js)
	}
}
