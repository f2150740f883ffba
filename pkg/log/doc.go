// Package log provides structured calculation logging for exposure tools.
//
// This package defines the Logger interface and Event types for capturing
// every calculation a tool performs, together with the rejected inputs.
// It is separate from operational logging (slog) - calculation capture
// provides a complete machine-readable record for later review, for
// example to reconstruct the settings used across a shoot.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For keeping records: write to binary file
//	logger, _ := log.NewFileLogger("shoot.evlog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Completed calculations are captured as CalcEvent carrying the full
// exposure triplet (EV, aperture, time) with the operation that produced
// it. Rejected input is captured as ErrorEventData.
//
// # File Format
//
// Log files use CBOR encoding with .evlog extension. The ev-log CLI tool
// provides viewing, filtering, and export capabilities.
package log
