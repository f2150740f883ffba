package exposure

import (
	"errors"
	"fmt"
	"math"

	"github.com/photography-ev/ev-go/pkg/stops"
)

var (
	// ErrNonPositiveAperture is returned when an aperture argument is
	// zero, negative or not finite.
	ErrNonPositiveAperture = errors.New("aperture must be positive")
	// ErrNonPositiveTime is returned when an exposure time argument is
	// zero, negative or not finite.
	ErrNonPositiveTime = errors.New("exposure time must be positive")
	// ErrNoStops is returned when a calculation is given an explicitly
	// empty stop list. A nil list selects the defaults instead.
	ErrNoStops = errors.New("empty stop list")
)

// EV returns the exposure value for the given aperture (f-number) and
// exposure time in seconds, rounded to the nearest integer with halves
// away from zero. Long exposures at wide apertures produce negative
// values.
func EV(aperture, seconds float64) (int, error) {
	if err := checkAperture(aperture); err != nil {
		return 0, err
	}
	if err := checkTime(seconds); err != nil {
		return 0, err
	}
	return RoundHalfAwayFromZero(math.Log2(aperture * aperture / seconds)), nil
}

// Aperture returns the aperture from the given list that comes closest
// to a correct exposure at the given exposure value and time in seconds.
// A nil list selects stops.DefaultApertures. The candidate list is used
// as-is; entries are not validated or reordered, and the first of two
// equally close entries wins.
func Aperture(ev, seconds float64, apertures []float64) (float64, error) {
	if err := checkTime(seconds); err != nil {
		return 0, err
	}
	if apertures == nil {
		apertures = stops.DefaultApertures
	}

	ideal := math.Sqrt(math.Exp2(ev) * seconds)
	match, ok := stops.Closest(ideal, apertures)
	if !ok {
		return 0, ErrNoStops
	}
	return match, nil
}

// ShutterSpeed returns the exposure time from the given list that comes
// closest to a correct exposure at the given exposure value and aperture.
// A nil list selects stops.DefaultTimes. Matching follows the same rules
// as Aperture.
func ShutterSpeed(ev, aperture float64, times []float64) (float64, error) {
	if err := checkAperture(aperture); err != nil {
		return 0, err
	}
	if times == nil {
		times = stops.DefaultTimes
	}

	ideal := aperture * aperture / math.Exp2(ev)
	match, ok := stops.Closest(ideal, times)
	if !ok {
		return 0, ErrNoStops
	}
	return match, nil
}

func checkAperture(aperture float64) error {
	if math.IsNaN(aperture) || math.IsInf(aperture, 0) || aperture <= 0 {
		return fmt.Errorf("aperture %v: %w", aperture, ErrNonPositiveAperture)
	}
	return nil
}

func checkTime(seconds float64) error {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return fmt.Errorf("time %v: %w", seconds, ErrNonPositiveTime)
	}
	return nil
}
