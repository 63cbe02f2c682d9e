package version

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidFormat   = errors.New("invalid version format")
	ErrInvalidBumpType = errors.New("invalid bump type")
)

// Pair is the authoritative version/build pair kept in the constants file.
type Pair struct {
	Version string
	Build   string
}

// String returns the combined "vX.Y.Z-NNNN" form.
func (p Pair) String() string {
	return fmt.Sprintf("v%s-%s", p.Version, p.Build)
}

// Bump derives the next pair from p. A semantic bump resets the build
// counter to InitialBuild; a build bump increments only the counter and
// leaves the version untouched.
func Bump(p Pair, t BumpType) (Pair, error) {
	if t == BumpBuild {
		n, err := strconv.Atoi(p.Build)
		if err != nil {
			return Pair{}, fmt.Errorf("%w: build %q is not numeric", ErrInvalidFormat, p.Build)
		}
		return Pair{Version: p.Version, Build: FormatBuild(n + 1)}, nil
	}

	v, err := Parse(p.Version)
	if err != nil {
		return Pair{}, err
	}

	var next string
	switch t {
	case BumpMajor:
		next = fmt.Sprintf("%d.0.0", v.Major()+1)
	case BumpMinor:
		next = fmt.Sprintf("%d.%d.0", v.Major(), v.Minor()+1)
	case BumpPatch:
		next = fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch()+1)
	default:
		return Pair{}, fmt.Errorf("%w: %q", ErrInvalidBumpType, string(t))
	}

	return Pair{Version: next, Build: InitialBuild}, nil
}

// FormatBuild renders a build counter as a zero-padded 4-digit string.
// Counters past 9999 simply widen.
func FormatBuild(n int) string {
	return fmt.Sprintf("%04d", n)
}
