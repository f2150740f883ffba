// Package profile loads named stop-table profiles from YAML.
//
// A profile bundles the aperture and shutter-speed series of a specific
// camera or workflow under a name, so equipment with half stops, third
// stops or a restricted range can be described once in a file and
// reused. Stop values are written in conventional notation ("f/5.6",
// "1/250") and parsed through the exposure package.
package profile

import (
	"errors"
	"fmt"

	"github.com/photography-ev/ev-go/pkg/stops"
)

// Profile describes the stop tables of a camera or workflow.
type Profile struct {
	// Name identifies the profile (e.g. "canon-half-stop").
	Name string

	// Description explains what equipment the profile describes.
	Description string

	// Apertures is the aperture series in f-numbers. An empty series
	// means the profile does not restrict apertures and the defaults
	// apply.
	Apertures stops.List

	// Times is the shutter-speed series in seconds. An empty series
	// means the defaults apply.
	Times stops.List
}

// ApertureList returns the profile's aperture series, falling back to
// stops.DefaultApertures when the profile does not define one.
func (p *Profile) ApertureList() stops.List {
	if len(p.Apertures) == 0 {
		return stops.DefaultApertures
	}
	return p.Apertures
}

// TimeList returns the profile's shutter-speed series, falling back to
// stops.DefaultTimes when the profile does not define one.
func (p *Profile) TimeList() stops.List {
	if len(p.Times) == 0 {
		return stops.DefaultTimes
	}
	return p.Times
}

// Validate checks that the profile can serve calculations: the name is
// set and any stop series it defines passes stops validation. Empty
// series are fine, the defaults cover them.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New("profile name is required")
	}
	if err := p.Apertures.Validate(); err != nil {
		return fmt.Errorf("apertures: %w", err)
	}
	if err := p.Times.Validate(); err != nil {
		return fmt.Errorf("times: %w", err)
	}
	return nil
}

// BuiltinFullStop is the name of the built-in profile carrying the
// default full-stop series.
const BuiltinFullStop = "full-stop"

// Builtin returns the named built-in profile. The boolean is false when
// no built-in profile has that name.
func Builtin(name string) (*Profile, bool) {
	switch name {
	case BuiltinFullStop:
		return &Profile{
			Name:        BuiltinFullStop,
			Description: "Classic full-stop aperture and shutter speed series",
			Apertures:   stops.DefaultApertures,
			Times:       stops.DefaultTimes,
		}, true
	}
	return nil, false
}

// BuiltinNames lists the names of all built-in profiles.
func BuiltinNames() []string {
	return []string{BuiltinFullStop}
}
