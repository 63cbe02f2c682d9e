// Package sync keeps a project's version-bearing files consistent with
// the authoritative pair stored in its constants file.
package sync

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/david1155/versync/pkg/config"
	"github.com/david1155/versync/pkg/version"
)

// Syncer reads the authoritative version/build pair from the constants
// file and keeps the manifest and changelog in line with it.
type Syncer struct {
	Cfg    config.Config // absolute file paths
	DryRun bool
	Out    io.Writer
}

func New(cfg config.Config, dryRun bool) *Syncer {
	return &Syncer{Cfg: cfg, DryRun: dryRun, Out: os.Stdout}
}

// Current reads the version/build pair from the constants file.
func (s *Syncer) Current() (version.Pair, error) {
	data, err := os.ReadFile(s.Cfg.Constants)
	if err != nil {
		return version.Pair{}, fmt.Errorf("reading %s: %w", s.Cfg.Constants, err)
	}

	pair, err := ConstantsFile{}.Current(data)
	if err != nil {
		return version.Pair{}, fmt.Errorf("%s: %w", s.Cfg.Constants, err)
	}
	return pair, nil
}

// Show prints the current pair without touching any file.
func (s *Syncer) Show() error {
	pair, err := s.Current()
	if err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "\n📦 Current Version\n")
	fmt.Fprintf(s.Out, "   Version: %s\n", pair.Version)
	fmt.Fprintf(s.Out, "   Build: %s\n", pair.Build)
	fmt.Fprintf(s.Out, "   Full: %s\n\n", pair)
	return nil
}

// Bump computes the next pair and rewrites the project files. The
// constants file and changelog are always rewritten; the manifest only
// when the semantic version itself changed. Files already written stay
// written if a later update fails.
func (s *Syncer) Bump(t version.BumpType) error {
	old, err := s.Current()
	if err != nil {
		return err
	}

	next, err := version.Bump(old, t)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.Out, "\n📦 Version Bump: %s\n", t)
	fmt.Fprintf(s.Out, "   Old: %s\n", old)
	fmt.Fprintf(s.Out, "   New: %s\n\n", next)

	if err := s.applyTo(ConstantsFile{}, s.Cfg.Constants, next); err != nil {
		return err
	}
	if next.Version != old.Version {
		if err := s.applyTo(ManifestFile{}, s.Cfg.Manifest, next); err != nil {
			return err
		}
	}
	if err := s.applyTo(ChangelogFile{}, s.Cfg.Changelog, next); err != nil {
		return err
	}

	if s.DryRun {
		fmt.Fprintf(s.Out, "\nDry run complete, no files were modified.\n")
		return nil
	}

	fmt.Fprintf(s.Out, "\n✅ Version bumped successfully!\n")
	fmt.Fprintf(s.Out, "\nNext steps:\n")
	fmt.Fprintf(s.Out, "1. Review changes: git diff\n")
	fmt.Fprintf(s.Out, "2. Rebuild: cargo build\n")
	fmt.Fprintf(s.Out, "3. Commit: git add -A && git commit -m 'chore: bump version to %s'\n", next.Version)
	fmt.Fprintf(s.Out, "4. Push: git push origin main\n")
	return nil
}

// applyTo runs one target against its file. A target that finds nothing
// to substitute leaves the file alone; that is reported as a warning,
// not an error, since files already rewritten cannot be rolled back.
func (s *Syncer) applyTo(t Target, path string, p version.Pair) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out, changed, err := t.Apply(data, p)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if !changed {
		log.Warn("version pattern not found, file left unchanged", "target", t.Name(), "file", path)
		return nil
	}

	if s.DryRun {
		fmt.Fprintf(s.Out, "✓ Would update %s\n", path)
		return nil
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(s.Out, "✓ Updated %s\n", path)
	return nil
}
