package sync

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/david1155/versync/pkg/version"
)

// ErrPatternNotFound reports that a file does not contain the version
// declaration a target expects.
var ErrPatternNotFound = errors.New("version pattern not found")

// A Target knows how to find and rewrite the version fields of one file
// format. Apply returns the rewritten content and reports whether a
// substitution actually happened, so the caller can tell a rewrite from
// a no-op. Swapping a file format means swapping its Target; the bump
// arithmetic never changes.
type Target interface {
	Name() string
	Apply(src []byte, p version.Pair) ([]byte, bool, error)
}

var (
	constantsVersionRe = regexp.MustCompile(`(\bVERSION:[^=\n]*=\s*)"[^"]+"`)
	constantsBuildRe   = regexp.MustCompile(`(\bBUILD:[^=\n]*=\s*)"[^"]+"`)

	constantsVersionValRe = regexp.MustCompile(`\bVERSION:[^=\n]*=\s*"([^"]+)"`)
	constantsBuildValRe   = regexp.MustCompile(`\bBUILD:[^=\n]*=\s*"([^"]+)"`)
)

// ConstantsFile is the authoritative source: a source file declaring
// VERSION and BUILD string constants, e.g.
//
//	pub const VERSION: &str = "0.2.6";
//	pub const BUILD: &str = "0007";
type ConstantsFile struct{}

func (ConstantsFile) Name() string { return "constants" }

// Current extracts the version/build pair from the file content.
func (ConstantsFile) Current(src []byte) (version.Pair, error) {
	vm := constantsVersionValRe.FindSubmatch(src)
	bm := constantsBuildValRe.FindSubmatch(src)
	if vm == nil || bm == nil {
		return version.Pair{}, fmt.Errorf("%w: need VERSION and BUILD string declarations", ErrPatternNotFound)
	}
	return version.Pair{Version: string(vm[1]), Build: string(bm[1])}, nil
}

func (c ConstantsFile) Apply(src []byte, p version.Pair) ([]byte, bool, error) {
	if _, err := c.Current(src); err != nil {
		return nil, false, err
	}

	out := constantsVersionRe.ReplaceAll(src, []byte(`${1}"`+p.Version+`"`))
	out = constantsBuildRe.ReplaceAll(out, []byte(`${1}"`+p.Build+`"`))
	return out, true, nil
}

var manifestVersionRe = regexp.MustCompile(`(?m)^version = "[^"]+"`)

// ManifestFile rewrites the first line of the form `version = "X.Y.Z"`.
// The anchor is per-line, so dependency tables mentioning version deeper
// in a line are never touched.
type ManifestFile struct{}

func (ManifestFile) Name() string { return "manifest" }

func (ManifestFile) Apply(src []byte, p version.Pair) ([]byte, bool, error) {
	loc := manifestVersionRe.FindIndex(src)
	if loc == nil {
		return src, false, nil
	}

	out := make([]byte, 0, len(src))
	out = append(out, src[:loc[0]]...)
	out = append(out, fmt.Sprintf("version = %q", p.Version)...)
	out = append(out, src[loc[1]:]...)
	return out, true, nil
}

var changelogBlockRe = regexp.MustCompile(`## Current Version\s+- \*\*Version\*\*: [^\n]+\s+- \*\*Build\*\*: [^\n]+`)

// ChangelogFile rewrites the "## Current Version" block of the
// documentation file. A file without the block is returned unchanged.
type ChangelogFile struct{}

func (ChangelogFile) Name() string { return "changelog" }

func (ChangelogFile) Apply(src []byte, p version.Pair) ([]byte, bool, error) {
	if !changelogBlockRe.Match(src) {
		return src, false, nil
	}

	block := fmt.Sprintf("## Current Version\n\n- **Version**: %s\n- **Build**: %s", p.Version, p.Build)
	return changelogBlockRe.ReplaceAll(src, []byte(block)), true, nil
}
