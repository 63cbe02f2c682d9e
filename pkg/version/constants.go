package version

import "fmt"

// InitialBuild is the build counter value after any semantic bump.
const InitialBuild = "0001"

// BumpType selects which component of the version/build pair to increment.
type BumpType string

const (
	BumpMajor BumpType = "major"
	BumpMinor BumpType = "minor"
	BumpPatch BumpType = "patch"
	BumpBuild BumpType = "build"
)

// ParseBumpType validates a bump type given on the command line.
func ParseBumpType(s string) (BumpType, error) {
	switch t := BumpType(s); t {
	case BumpMajor, BumpMinor, BumpPatch, BumpBuild:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q (want major, minor, patch or build)", ErrInvalidBumpType, s)
}
