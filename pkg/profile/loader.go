package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/photography-ev/ev-go/pkg/exposure"
)

// LoadError provides details about a profile loading error.
type LoadError struct {
	// File is the path to the file that failed to load, if known.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	if e.File != "" {
		return e.File + ": " + e.Message
	}
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// profileYAML is the on-disk form. Stop entries are scalars in
// conventional notation, so both "f/5.6" and plain "5.6" work for
// apertures, and "1/250", "0.5" or "30" for times.
type profileYAML struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Apertures   []string `yaml:"apertures"`
	Times       []string `yaml:"times"`
}

// Parse parses a profile from YAML bytes.
func Parse(data []byte) (*Profile, error) {
	var raw profileYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	p := &Profile{
		Name:        raw.Name,
		Description: raw.Description,
	}

	for i, s := range raw.Apertures {
		v, err := exposure.ParseAperture(s)
		if err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("aperture %d (%q)", i, s),
				Cause:   err,
			}
		}
		p.Apertures = append(p.Apertures, v)
	}

	for i, s := range raw.Times {
		v, err := exposure.ParseShutterSpeed(s)
		if err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("time %d (%q)", i, s),
				Cause:   err,
			}
		}
		p.Times = append(p.Times, v)
	}

	if err := p.Validate(); err != nil {
		return nil, &LoadError{
			Message: err.Error(),
			Cause:   err,
		}
	}

	return p, nil
}

// Load loads a profile from a file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	p, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{
			File:    path,
			Message: err.Error(),
		}
	}

	return p, nil
}

// LoadDirectory loads all profiles from a directory.
// Only files with .yaml or .yml extensions are loaded.
func LoadDirectory(dir string) ([]*Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			File:    dir,
			Message: "failed to read directory",
			Cause:   err,
		}
	}

	var profiles []*Profile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		p, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		profiles = append(profiles, p)
	}

	return profiles, nil
}
