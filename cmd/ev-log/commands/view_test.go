package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/photography-ev/ev-go/pkg/log"
)

func TestFormatCalcEvent(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	event := log.Event{
		Timestamp: ts,
		SessionID: "abc12345-6789-0123-4567-890abcdef012",
		Source:    log.SourceInteractive,
		Category:  log.CategoryCalc,
		Profile:   "full-stop",
		Calc: &log.CalcEvent{
			Op:       log.OpEV,
			EV:       floatPtr(15),
			Aperture: floatPtr(5.6),
			Seconds:  floatPtr(1.0 / 1000),
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	// Check timestamp format
	if !strings.Contains(output, "2026-01-28T10:15:32.123456Z") {
		t.Errorf("expected formatted timestamp, got: %s", output)
	}

	// Check session ID (shortened)
	if !strings.Contains(output, "[sess:abc12345]") {
		t.Errorf("expected shortened session ID, got: %s", output)
	}

	// Check source
	if !strings.Contains(output, "INTERACTIVE") {
		t.Errorf("expected INTERACTIVE source, got: %s", output)
	}

	// Check profile
	if !strings.Contains(output, "Profile: full-stop") {
		t.Errorf("expected profile, got: %s", output)
	}

	// Check calculation details in conventional notation
	if !strings.Contains(output, "EV: 15") {
		t.Errorf("expected EV: 15, got: %s", output)
	}
	if !strings.Contains(output, "Aperture: f/5.6") {
		t.Errorf("expected Aperture: f/5.6, got: %s", output)
	}
	if !strings.Contains(output, "Time: 1/1000s") {
		t.Errorf("expected Time: 1/1000s, got: %s", output)
	}
}

func TestFormatCalcEventCustomStops(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	event := log.Event{
		Timestamp: ts,
		SessionID: "abc12345",
		Source:    log.SourceArgs,
		Category:  log.CategoryCalc,
		Profile:   "half-stop",
		Calc: &log.CalcEvent{
			Op:          log.OpAperture,
			EV:          floatPtr(9),
			Aperture:    floatPtr(2.8),
			Seconds:     floatPtr(1.0 / 60),
			CustomStops: true,
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	// Check operation label
	if !strings.Contains(output, "APERTURE") {
		t.Errorf("expected APERTURE label, got: %s", output)
	}

	// Check custom stops marker
	if !strings.Contains(output, "Custom stops: true") {
		t.Errorf("expected custom stops marker, got: %s", output)
	}
}

func TestFormatErrorEvent(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 30, 0, time.UTC)
	event := log.Event{
		Timestamp: ts,
		SessionID: "abc12345",
		Source:    log.SourceArgs,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Op:      log.OpShutterSpeed,
			Message: "aperture -1: aperture must be a positive number",
			Input:   "15 -1",
		},
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	// Check type label
	if !strings.Contains(output, "Error") {
		t.Errorf("expected Error label, got: %s", output)
	}

	// Check operation
	if !strings.Contains(output, "Operation: SHUTTER_SPEED") {
		t.Errorf("expected SHUTTER_SPEED operation, got: %s", output)
	}

	// Check message and input
	if !strings.Contains(output, "Message: aperture -1") {
		t.Errorf("expected error message, got: %s", output)
	}
	if !strings.Contains(output, "Input: 15 -1") {
		t.Errorf("expected rejected input, got: %s", output)
	}
}

func TestFilterByCategory(t *testing.T) {
	events := []log.Event{
		{Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
		{Category: log.CategoryError, Error: &log.ErrorEventData{Op: log.OpEV}},
		{Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpAperture}},
	}

	errCat := log.CategoryError
	filter := ViewFilter{Category: &errCat}

	filtered := filterEvents(events, filter)
	if len(filtered) != 1 {
		t.Errorf("expected 1 event, got %d", len(filtered))
	}
	if filtered[0].Category != log.CategoryError {
		t.Errorf("expected error category, got %v", filtered[0].Category)
	}
}

func TestFilterByOp(t *testing.T) {
	events := []log.Event{
		{Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpEV}},
		{Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpAperture}},
		{Category: log.CategoryError, Error: &log.ErrorEventData{Op: log.OpAperture}},
		{Category: log.CategoryCalc, Calc: &log.CalcEvent{Op: log.OpShutterSpeed}},
		{Category: log.CategoryCalc}, // no payload, never matches an op filter
	}

	ap := log.OpAperture
	filter := ViewFilter{Op: &ap}

	filtered := filterEvents(events, filter)
	if len(filtered) != 2 {
		t.Errorf("expected 2 events, got %d", len(filtered))
	}
}

func TestFilterBySource(t *testing.T) {
	events := []log.Event{
		{Source: log.SourceArgs, Category: log.CategoryCalc},
		{Source: log.SourceInteractive, Category: log.CategoryCalc},
		{Source: log.SourceInteractive, Category: log.CategoryCalc},
	}

	args := log.SourceArgs
	filter := ViewFilter{Source: &args}

	filtered := filterEvents(events, filter)
	if len(filtered) != 1 {
		t.Errorf("expected 1 event, got %d", len(filtered))
	}
	if filtered[0].Source != log.SourceArgs {
		t.Errorf("expected args source, got %v", filtered[0].Source)
	}
}

func TestFilterBySessionID(t *testing.T) {
	events := []log.Event{
		{SessionID: "sess-1", Category: log.CategoryCalc},
		{SessionID: "sess-2", Category: log.CategoryCalc},
		{SessionID: "sess-1", Category: log.CategoryCalc},
	}

	filter := ViewFilter{SessionID: "sess-1"}

	filtered := filterEvents(events, filter)
	if len(filtered) != 2 {
		t.Errorf("expected 2 events, got %d", len(filtered))
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Category
		wantErr  bool
	}{
		{"calc", log.CategoryCalc, false},
		{"CALC", log.CategoryCalc, false},
		{"error", log.CategoryError, false},
		{"ERROR", log.CategoryError, false},
		{"invalid", 0, true},
	}

	for _, tt := range tests {
		got, err := parseCategory(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseCategory(%q) expected error", tt.input)
			}
		} else {
			if err != nil {
				t.Errorf("parseCategory(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("parseCategory(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		}
	}
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Operation
		wantErr  bool
	}{
		{"ev", log.OpEV, false},
		{"EV", log.OpEV, false},
		{"aperture", log.OpAperture, false},
		{"shutter", log.OpShutterSpeed, false},
		{"shutter-speed", log.OpShutterSpeed, false},
		{"invalid", 0, true},
	}

	for _, tt := range tests {
		got, err := parseOp(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseOp(%q) expected error", tt.input)
			}
		} else {
			if err != nil {
				t.Errorf("parseOp(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("parseOp(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		}
	}
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		input    string
		expected log.Source
		wantErr  bool
	}{
		{"args", log.SourceArgs, false},
		{"ARGS", log.SourceArgs, false},
		{"interactive", log.SourceInteractive, false},
		{"INTERACTIVE", log.SourceInteractive, false},
		{"invalid", 0, true},
	}

	for _, tt := range tests {
		got, err := parseSource(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSource(%q) expected error", tt.input)
			}
		} else {
			if err != nil {
				t.Errorf("parseSource(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("parseSource(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		}
	}
}

func TestRunViewFiltersFile(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	events := []log.Event{
		{
			Timestamp: ts,
			SessionID: "sess-1",
			Category:  log.CategoryCalc,
			Calc:      &log.CalcEvent{Op: log.OpEV, EV: floatPtr(15)},
		},
		{
			Timestamp: ts.Add(time.Second),
			SessionID: "sess-1",
			Category:  log.CategoryError,
			Error:     &log.ErrorEventData{Op: log.OpEV, Message: "bad input"},
		},
	}

	path := createTestLogFile(t, events)

	calc := log.CategoryCalc
	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Category: &calc}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "EV: 15") {
		t.Errorf("expected calc event in output, got: %s", output)
	}
	if strings.Contains(output, "bad input") {
		t.Errorf("expected error event filtered out, got: %s", output)
	}
}
