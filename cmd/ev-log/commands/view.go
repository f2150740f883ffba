// Package commands implements the ev-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/photography-ev/ev-go/pkg/exposure"
	"github.com/photography-ev/ev-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category  *log.Category
	Op        *log.Operation
	Source    *log.Source
	SessionID string
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [sess:id] SOURCE Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	sessID := shortenSessionID(event.SessionID)
	source := event.Source.String()

	// Determine event type label
	var typeLabel string
	switch {
	case event.Calc != nil:
		typeLabel = event.Calc.Op.String()
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [sess:%s] %-11s %s\n", ts, sessID, source, typeLabel)

	if event.Profile != "" {
		fmt.Fprintf(w, "  Profile: %s\n", event.Profile)
	}

	// Type-specific details
	switch {
	case event.Calc != nil:
		formatCalcDetails(w, event.Calc)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatCalcDetails writes calculation-specific details.
func formatCalcDetails(w io.Writer, calc *log.CalcEvent) {
	if calc.EV != nil {
		fmt.Fprintf(w, "  EV: %s\n", strconv.FormatFloat(*calc.EV, 'g', -1, 64))
	}
	if calc.Aperture != nil {
		fmt.Fprintf(w, "  Aperture: %s\n", exposure.FormatAperture(*calc.Aperture))
	}
	if calc.Seconds != nil {
		fmt.Fprintf(w, "  Time: %ss\n", exposure.FormatShutterSpeed(*calc.Seconds))
	}
	if calc.CustomStops {
		fmt.Fprintln(w, "  Custom stops: true")
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Operation: %s\n", err.Op.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Input != "" {
		fmt.Fprintf(w, "  Input: %s\n", err.Input)
	}
}

// filterEvents returns events matching the filter criteria.
func filterEvents(events []log.Event, filter ViewFilter) []log.Event {
	var result []log.Event
	for _, e := range events {
		if !matchesView(e, filter) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// matchesView returns true if the event matches all view filter criteria.
func matchesView(e log.Event, filter ViewFilter) bool {
	if filter.SessionID != "" && e.SessionID != filter.SessionID {
		return false
	}
	if filter.Category != nil && e.Category != *filter.Category {
		return false
	}
	if filter.Source != nil && e.Source != *filter.Source {
		return false
	}
	if filter.Op != nil {
		switch {
		case e.Calc != nil:
			return e.Calc.Op == *filter.Op
		case e.Error != nil:
			return e.Error.Op == *filter.Op
		default:
			return false
		}
	}
	return true
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "calc":
		return log.CategoryCalc, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be calc or error)", s)
	}
}

// ParseOpFlag parses an operation string from command-line flag (case-insensitive).
func ParseOpFlag(s string) (log.Operation, error) {
	return parseOp(s)
}

// parseOp parses an operation string (case-insensitive).
func parseOp(s string) (log.Operation, error) {
	switch strings.ToLower(s) {
	case "ev":
		return log.OpEV, nil
	case "aperture":
		return log.OpAperture, nil
	case "shutter", "shutter-speed":
		return log.OpShutterSpeed, nil
	default:
		return 0, fmt.Errorf("invalid operation: %s (must be ev, aperture, or shutter)", s)
	}
}

// ParseSourceFlag parses a source string from command-line flag (case-insensitive).
func ParseSourceFlag(s string) (log.Source, error) {
	return parseSource(s)
}

// parseSource parses a source string (case-insensitive).
func parseSource(s string) (log.Source, error) {
	switch strings.ToLower(s) {
	case "args":
		return log.SourceArgs, nil
	case "interactive":
		return log.SourceInteractive, nil
	default:
		return 0, fmt.Errorf("invalid source: %s (must be args or interactive)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		if !matchesView(event, filter) {
			continue
		}

		formatEvent(output, event)
	}

	return nil
}
