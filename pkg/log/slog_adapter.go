package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes calculation events to an slog.Logger.
// Useful for development when you want to see captured events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("category", event.Category.String()),
		slog.String("source", event.Source.String()),
	}

	if event.Profile != "" {
		attrs = append(attrs, slog.String("profile", event.Profile))
	}

	// Add type-specific attributes
	switch {
	case event.Calc != nil:
		attrs = append(attrs, slog.String("op", event.Calc.Op.String()))
		if event.Calc.EV != nil {
			attrs = append(attrs, slog.Float64("ev", *event.Calc.EV))
		}
		if event.Calc.Aperture != nil {
			attrs = append(attrs, slog.Float64("aperture", *event.Calc.Aperture))
		}
		if event.Calc.Seconds != nil {
			attrs = append(attrs, slog.Float64("seconds", *event.Calc.Seconds))
		}
		if event.Calc.CustomStops {
			attrs = append(attrs, slog.Bool("custom_stops", true))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("op", event.Error.Op.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Input != "" {
			attrs = append(attrs, slog.String("input", event.Error.Input))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "calc", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
