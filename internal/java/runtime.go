package java

import (
	"errors"
	"fmt"
	"regexp"
)

// Runtime is the major Java runtime line a version string belongs to
type Runtime int

const (
	// Other is any runtime that is not Java 8, 11 or 17
	Other Runtime = iota
	Java8
	Java11
	Java17
)

// String returns a display name such as "Java 17"
func (r Runtime) String() string {
	switch r {
	case Java8:
		return "Java 8"
	case Java11:
		return "Java 11"
	case Java17:
		return "Java 17"
	default:
		return "Other"
	}
}

// ErrInvalidFormat matches every error returned by Parse
var ErrInvalidFormat = errors.New("invalid Java Runtime version format")

// InvalidFormatError reports a version string without a leading major version
type InvalidFormatError struct {
	Version string
}

func (e *InvalidFormatError) Error() string {
	return "Could not parse Java Runtime version: " + e.Version
}

// Is lets errors.Is(err, ErrInvalidFormat) match
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// majorRe captures the major version, skipping the legacy "1." prefix
var majorRe = regexp.MustCompile(`^(?:1\.)?(\d+)`)

// Parse classifies a version string such as "1.8.0_321", "11.0.16+8" or "17".
// The captured major is compared as text, so "08" is Other.
func Parse(version string) (Runtime, error) {
	matches := majorRe.FindStringSubmatch(version)
	if matches == nil {
		return Other, &InvalidFormatError{Version: version}
	}

	switch matches[1] {
	case "8":
		return Java8, nil
	case "11":
		return Java11, nil
	case "17":
		return Java17, nil
	default:
		return Other, nil
	}
}

// VersionSource reports the version string of the active Java runtime
type VersionSource func() (string, error)

// currentSource is swapped out in tests
var currentSource VersionSource = ActiveVersion

// Current classifies the active Java runtime
func Current() (Runtime, error) {
	_, r, err := CurrentVersion()
	return r, err
}

// CurrentVersion returns the active runtime's version string and its line
func CurrentVersion() (string, Runtime, error) {
	version, err := currentSource()
	if err != nil {
		return "", Other, fmt.Errorf("failed to read current Java version: %w", err)
	}
	r, err := Parse(version)
	return version, r, err
}

// CurrentFrom classifies the version string reported by src
func CurrentFrom(src VersionSource) (Runtime, error) {
	version, err := src()
	if err != nil {
		return Other, fmt.Errorf("failed to read current Java version: %w", err)
	}
	return Parse(version)
}
