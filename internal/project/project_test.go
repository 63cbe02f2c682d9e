package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "Cargo.toml"), []byte("[package]\n"), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	nested := filepath.Join(root, "src", "agents", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("creating nested dirs: %v", err)
	}

	tests := []struct {
		name  string
		start string
	}{
		{name: "at root", start: root},
		{name: "one level down", start: filepath.Join(root, "src")},
		{name: "deeply nested", start: nested},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FindRoot(tc.start, "Cargo.toml")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != root {
				t.Errorf("FindRoot(%q)=%q, want %q", tc.start, got, root)
			}
		})
	}
}

func TestFindRootNotFound(t *testing.T) {
	// A fresh temp dir has no manifest anywhere up its chain under the
	// name used here.
	_, err := FindRoot(t.TempDir(), "versync-no-such-manifest.toml")
	if !errors.Is(err, ErrManifestNotFound) {
		t.Fatalf("error=%v, want ErrManifestNotFound", err)
	}
}

func TestFindRootRelativeManifestPath(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "config")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "project.toml"), []byte(""), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	got, err := FindRoot(root, filepath.Join("config", "project.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != root {
		t.Errorf("got %q, want %q", got, root)
	}
}
