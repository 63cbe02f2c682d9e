package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Parse parses a strict three-component semantic version like "1.2.3".
// Inputs with fewer or more dot-separated components, non-numeric
// components, or pre-release/build-metadata suffixes fail with
// ErrInvalidFormat.
func Parse(input string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, input, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return nil, fmt.Errorf("%w: %q: pre-release and build metadata are not supported", ErrInvalidFormat, input)
	}
	return v, nil
}
