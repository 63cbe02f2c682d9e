// Package project locates the project root that versync operates on.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrManifestNotFound reports that no ancestor of the start directory
// contains the project manifest.
var ErrManifestNotFound = errors.New("manifest not found")

// FindRoot walks upward from start until it finds a directory containing
// manifest (a path relative to the root, e.g. "Cargo.toml"), and returns
// that directory as an absolute path.
func FindRoot(start, manifest string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, manifest)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or any parent directory", ErrManifestNotFound, manifest, start)
		}
		dir = parent
	}
}
