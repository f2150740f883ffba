package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/photography-ev/ev-go/pkg/log"
)

func TestStatsCountsByCategory(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpAperture}},
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryError, Error: &log.ErrorEventData{Message: "test"}},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	err := RunStats(path, &buf)
	if err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()

	// Check category counts
	if !strings.Contains(output, "CALC:") {
		t.Error("expected CALC category in output")
	}
	if !strings.Contains(output, "ERROR:") {
		t.Error("expected ERROR category in output")
	}
}

func TestStatsCountsByOp(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpAperture}},
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpShutterSpeed}},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	err := RunStats(path, &buf)
	if err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()

	// Check operation counts
	if !strings.Contains(output, "EV:") {
		t.Error("expected EV operation in output")
	}
	if !strings.Contains(output, "APERTURE:") {
		t.Error("expected APERTURE operation in output")
	}
	if !strings.Contains(output, "SHUTTER_SPEED:") {
		t.Error("expected SHUTTER_SPEED operation in output")
	}
}

func TestStatsCountsSessions(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, SessionID: "sess-aaaa-bbbb", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
		{Timestamp: ts.Add(time.Second), SessionID: "sess-aaaa-bbbb", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
		{Timestamp: ts, SessionID: "sess-cccc-dddd", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	err := RunStats(path, &buf)
	if err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()

	// Check session count
	if !strings.Contains(output, "Sessions: 2") {
		t.Errorf("expected 2 sessions in output, got:\n%s", output)
	}

	// Check session details
	if !strings.Contains(output, "[sess-aaa") {
		t.Error("expected sess-aaaa session details")
	}
}

func TestStatsTotalEvents(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	err := RunStats(path, &buf)
	if err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "Total Events: 3") {
		t.Errorf("expected 3 total events in output, got:\n%s", output)
	}
}

func TestStatsTimeRange(t *testing.T) {
	start := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 28, 11, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: start, SessionID: "s1", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
		{Timestamp: end, SessionID: "s1", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	err := RunStats(path, &buf)
	if err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "Duration:") {
		t.Error("expected Duration in output")
	}
	if !strings.Contains(output, "1h0m0s") {
		t.Errorf("expected 1h0m0s duration in output, got:\n%s", output)
	}
}

func TestStatsErrorCount(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryError, Error: &log.ErrorEventData{Message: "error 1"}},
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryError, Error: &log.ErrorEventData{Message: "error 2"}},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	err := RunStats(path, &buf)
	if err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "Errors: 2") {
		t.Errorf("expected 2 errors in output, got:\n%s", output)
	}
}

func TestStatsTracksProfile(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{Timestamp: ts, SessionID: "s1", Category: log.CategoryCalc, Profile: "half-stop", Calc: &log.CalcEvent{Op: log.OpEV}},
	}

	path := createTestLogFile(t, events)

	var buf bytes.Buffer
	err := RunStats(path, &buf)
	if err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "Profile: half-stop") {
		t.Errorf("expected session profile in output, got:\n%s", output)
	}
}
