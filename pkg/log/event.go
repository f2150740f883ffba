package log

import (
	"time"
)

// Event represents a captured calculation log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the calculator session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Source indicates how the calculation was entered.
	Source Source `cbor:"4,keyasint,omitempty"`

	// Profile is the name of the stop profile in use, if any.
	Profile string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Calc  *CalcEvent      `cbor:"6,keyasint,omitempty"` // Completed calculations
	Error *ErrorEventData `cbor:"7,keyasint,omitempty"` // Rejected input
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCalc indicates a completed calculation.
	CategoryCalc Category = 0
	// CategoryError indicates rejected input or a failed calculation.
	CategoryError Category = 1
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCalc:
		return "CALC"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Source indicates how a calculation was entered.
type Source uint8

const (
	// SourceArgs indicates a one-shot command line invocation.
	SourceArgs Source = 0
	// SourceInteractive indicates the interactive shell.
	SourceInteractive Source = 1
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceArgs:
		return "ARGS"
	case SourceInteractive:
		return "INTERACTIVE"
	default:
		return "UNKNOWN"
	}
}

// Operation identifies which leg of the exposure triangle was computed.
type Operation uint8

const (
	// OpEV indicates an exposure value calculation from aperture and time.
	OpEV Operation = 0
	// OpAperture indicates an aperture lookup from EV and time.
	OpAperture Operation = 1
	// OpShutterSpeed indicates a shutter speed lookup from EV and aperture.
	OpShutterSpeed Operation = 2
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OpEV:
		return "EV"
	case OpAperture:
		return "APERTURE"
	case OpShutterSpeed:
		return "SHUTTER_SPEED"
	default:
		return "UNKNOWN"
	}
}

// CalcEvent captures a completed calculation. After a successful
// operation all three legs of the exposure triplet are known, so EV,
// Aperture and Seconds are all populated; Op records which one was
// computed from the other two.
type CalcEvent struct {
	// Op is the operation performed.
	Op Operation `cbor:"1,keyasint"`

	// EV is the exposure value.
	EV *float64 `cbor:"2,keyasint,omitempty"`

	// Aperture is the f-number.
	Aperture *float64 `cbor:"3,keyasint,omitempty"`

	// Seconds is the exposure time in seconds.
	Seconds *float64 `cbor:"4,keyasint,omitempty"`

	// CustomStops indicates a caller-supplied stop list was used
	// instead of the defaults.
	CustomStops bool `cbor:"5,keyasint,omitempty"`
}

// ErrorEventData captures rejected input and failed calculations.
type ErrorEventData struct {
	// Op is the operation that failed.
	Op Operation `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Input is the raw input that was rejected, if available.
	Input string `cbor:"3,keyasint,omitempty"`
}
