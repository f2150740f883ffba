// Package exposure implements photographic exposure value calculations.
//
// An exposure value (EV) ties aperture and shutter speed together: every
// combination of f-number N and exposure time t in seconds maps to
//
//	EV = log2(N^2 / t)
//
// rounded to the nearest integer. All combinations sharing an EV admit
// the same amount of light, so a scene metered at EV 15 can be shot at
// f/5.6 and 1/1000 or equally at f/11 and 1/250.
//
// # Calculations
//
// EV computes the exposure value for a given aperture and time. Aperture
// and ShutterSpeed solve the inverse problems: given an EV and one side
// of the pair, they compute the ideal value for the other side and snap
// it to the nearest entry of a stop list. Ideal values rarely land on a
// marked setting (the exact aperture for EV 9 at 1/60 is f/2.9), so the
// snap is what makes results usable on a real camera.
//
// # Stop Tables
//
// Passing a nil list selects the default series from the stops package.
// Cameras with half-stop or third-stop settings pass their own list; an
// explicitly empty list yields ErrNoStops. See the stops and profile
// packages for table handling.
//
// # Notation
//
// FormatAperture and FormatShutterSpeed render values in conventional
// notation ("f/5.6", "1/250"); ParseAperture and ParseShutterSpeed read
// it back. The ev-calc command uses these for its command line surface.
package exposure
