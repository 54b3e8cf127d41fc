// Package version provides catalog document format versions: parsing,
// comparison, and the compatibility check applied when a catalog is loaded.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Current is the catalog format version written and understood by this
// module.
const Current = "1.0"

// ErrIncompatible is returned for documents whose major version differs
// from Current.
var ErrIncompatible = errors.New("incompatible catalog version")

// Version is a parsed "major.minor" format version.
type Version struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return Version{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return Version{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return Version{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return Version{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible reports whether other has the same major version.
func (v Version) Compatible(other Version) bool {
	return v.Major == other.Major
}

// Newer reports whether v is a later version than other.
func (v Version) Newer(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor > other.Minor
}

// Check parses s and verifies it is compatible with Current. An empty
// string is taken to mean Current.
func Check(s string) (Version, error) {
	current, _ := Parse(Current)
	if s == "" {
		return current, nil
	}

	v, err := Parse(s)
	if err != nil {
		return Version{}, err
	}
	if !v.Compatible(current) {
		return v, fmt.Errorf("version %s (supported %d.x): %w", v, current.Major, ErrIncompatible)
	}
	return v, nil
}
