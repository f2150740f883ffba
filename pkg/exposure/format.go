package exposure

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidAperture is returned by ParseAperture for input that is
	// not a positive f-number.
	ErrInvalidAperture = errors.New("invalid aperture")
	// ErrInvalidShutterSpeed is returned by ParseShutterSpeed for input
	// that is not a positive time or fraction.
	ErrInvalidShutterSpeed = errors.New("invalid shutter speed")
)

// FormatAperture renders an f-number in conventional notation: "f/5.6".
func FormatAperture(aperture float64) string {
	return "f/" + strconv.FormatFloat(aperture, 'g', -1, 64)
}

// ParseAperture reads an aperture in "f/5.6" or plain "5.6" notation.
// The "f/" prefix is case-insensitive. Values must be positive.
func ParseAperture(s string) (float64, error) {
	v := strings.TrimSpace(s)
	if len(v) >= 2 && (v[0] == 'f' || v[0] == 'F') && v[1] == '/' {
		v = v[2:]
	}

	aperture, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(aperture) || math.IsInf(aperture, 0) || aperture <= 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidAperture)
	}
	return aperture, nil
}

// FormatShutterSpeed renders an exposure time in conventional notation:
// whole-number reciprocals for sub-second times ("1/250"), plain seconds
// otherwise ("30", "0.7").
func FormatShutterSpeed(seconds float64) string {
	if seconds > 0 && seconds < 1 {
		d := 1 / seconds
		if r := math.Round(d); math.Abs(d-r) <= 1e-9*r {
			return "1/" + strconv.FormatFloat(r, 'f', -1, 64)
		}
	}
	return strconv.FormatFloat(seconds, 'g', -1, 64)
}

// ParseShutterSpeed reads an exposure time in seconds. Sub-second times
// may be written as fractions: "1/250" means 0.004 seconds. Values must
// be positive.
func ParseShutterSpeed(s string) (float64, error) {
	v := strings.TrimSpace(s)

	if num, den, ok := strings.Cut(v, "/"); ok {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, fmt.Errorf("%q: %w", s, ErrInvalidShutterSpeed)
		}
		seconds := n / d
		if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
			return 0, fmt.Errorf("%q: %w", s, ErrInvalidShutterSpeed)
		}
		return seconds, nil
	}

	seconds, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidShutterSpeed)
	}
	return seconds, nil
}
