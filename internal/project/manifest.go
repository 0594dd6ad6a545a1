// Package project handles the oxygen.toml manifest that marks a project
// root and names its entry point.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a project root.
const ManifestName = "oxygen.toml"

// DefaultEntry is used when [build].entry is not set.
const DefaultEntry = "src/main.o2"

// Manifest is a loaded oxygen.toml plus where it was found.
type Manifest struct {
	Path   string // manifest file location
	Root   string // directory containing it
	Config Config
}

// Config mirrors the TOML structure.
type Config struct {
	Package Package `toml:"package"`
	Build   Build   `toml:"build"`
}

type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

type Build struct {
	Entry string `toml:"entry"`
}

// EntryPath resolves the entry point relative to the project root.
func (m *Manifest) EntryPath() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Build.Entry))
}

// FindManifest walks from startDir toward the filesystem root looking for
// oxygen.toml. Reports false when no manifest exists on the way up.
func FindManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest decodes and validates the manifest at path. [package].name
// is required; [build].entry defaults to src/main.o2; keys the schema does
// not know are rejected.
func LoadManifest(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if und := meta.Undecoded(); len(und) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, und[0].String())
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, fmt.Errorf("%s: missing [package].name", path)
	}
	if strings.TrimSpace(cfg.Build.Entry) == "" {
		cfg.Build.Entry = DefaultEntry
	}

	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}
