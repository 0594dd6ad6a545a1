package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Scaffold initializes a project at dir: the manifest plus a starter entry
// point. It refuses to touch an already-initialized directory and keeps an
// existing entry file. The returned list holds what was created, relative
// to dir.
func Scaffold(dir, name string) ([]string, error) {
	if st, err := os.Stat(dir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	} else if !st.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", dir)
	}

	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return nil, fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	var created []string
	if err := os.WriteFile(manifestPath, []byte(defaultManifest(name)), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}
	created = append(created, ManifestName)

	entryPath := filepath.Join(dir, filepath.FromSlash(DefaultEntry))
	if _, err := os.Stat(entryPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(entryPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %q: %w", filepath.Dir(entryPath), err)
		}
		if err := os.WriteFile(entryPath, []byte(starterProgram()), 0o600); err != nil {
			return nil, fmt.Errorf("failed to write entry point: %w", err)
		}
		created = append(created, DefaultEntry)
	}

	return created, nil
}

func defaultManifest(name string) string {
	return fmt.Sprintf(`# Oxygen project manifest
[package]
name = "%s"
version = "0.1.0"

[build]
entry = "src/main.o2"
`, name)
}

// starterProgram is the smallest program the front end accepts whole.
func starterProgram() string {
	return `int main() {
    return 0;
}
`
}
