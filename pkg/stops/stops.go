// Package stops defines the discrete aperture and shutter-speed series
// that exposure calculations snap their results to.
//
// Photographic equipment only offers a fixed set of aperture and time
// settings, so a computed ideal value is matched to the nearest entry
// of a stop list. The package ships the classic full-stop series as
// defaults and lets callers supply their own lists for equipment with
// half stops, third stops or unusual ranges.
package stops

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonPositiveStop is returned by Validate when a list contains
	// a zero or negative entry.
	ErrNonPositiveStop = errors.New("non-positive stop value")
	// ErrNonFiniteStop is returned by Validate when a list contains
	// a NaN or infinite entry.
	ErrNonFiniteStop = errors.New("non-finite stop value")
)

// List is an ordered series of stop values. Order matters: Closest
// prefers earlier entries on ties, so lists are written in the order
// entries should win. Callers must treat the default lists as read-only.
type List []float64

// DefaultApertures is the default aperture series in f-numbers, widest
// first. The series steps directly from f/1.4 to f/2.8 and carries no
// f/2.0 entry; calculations that need one take a custom list.
var DefaultApertures = List{1.0, 1.4, 2.8, 4.0, 5.6, 8.0, 11, 16, 22, 32, 45, 64}

// DefaultTimes is the default shutter-speed series in seconds, longest
// first. The sub-second half of the series has no 1/60 entry.
var DefaultTimes = List{
	1920, 960, 480, 240, 120, 60, 30, 15, 8, 4, 2, 1,
	1.0 / 2, 1.0 / 4, 1.0 / 8, 1.0 / 15, 1.0 / 30, 1.0 / 125,
	1.0 / 250, 1.0 / 500, 1.0 / 1000, 1.0 / 2000, 1.0 / 4000, 1.0 / 8000,
}

// Closest returns the candidate nearest to target. When two candidates
// are equally distant, the one listed first wins. The boolean is false
// only when candidates is empty.
func Closest(target float64, candidates []float64) (float64, bool) {
	if len(candidates) == 0 {
		return 0, false
	}

	best := candidates[0]
	bestDist := math.Abs(candidates[0] - target)
	for _, c := range candidates[1:] {
		if d := math.Abs(c - target); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, true
}

// Validate checks that every entry in the list is a positive, finite
// value. It returns nil for an empty list.
func (l List) Validate() error {
	for i, v := range l {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("stop %d (%v): %w", i, v, ErrNonFiniteStop)
		}
		if v <= 0 {
			return fmt.Errorf("stop %d (%v): %w", i, v, ErrNonPositiveStop)
		}
	}
	return nil
}
