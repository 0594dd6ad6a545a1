package project_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"oxygen/internal/project"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `[package]
name = "hello"
version = "0.2.0"

[build]
entry = "src/app.o2"
`)

	m, err := project.LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Config.Package.Name != "hello" || m.Config.Package.Version != "0.2.0" {
		t.Errorf("package: got %+v", m.Config.Package)
	}
	if m.Config.Build.Entry != "src/app.o2" {
		t.Errorf("entry: got %q", m.Config.Build.Entry)
	}
	if m.Root != filepath.Dir(path) {
		t.Errorf("root: got %q", m.Root)
	}
	want := filepath.Join(m.Root, "src", "app.o2")
	if m.EntryPath() != want {
		t.Errorf("EntryPath: got %q, want %q", m.EntryPath(), want)
	}
}

func TestLoadManifest_EntryDefaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `[package]
name = "hello"
`)

	m, err := project.LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Config.Build.Entry != project.DefaultEntry {
		t.Errorf("entry: got %q, want %q", m.Config.Build.Entry, project.DefaultEntry)
	}
}

func TestLoadManifest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{
			"missing package section",
			"[build]\nentry = \"src/main.o2\"\n",
			"missing [package]",
		},
		{
			"missing name",
			"[package]\nversion = \"0.1.0\"\n",
			"missing [package].name",
		},
		{
			"blank name",
			"[package]\nname = \"  \"\n",
			"missing [package].name",
		},
		{
			"unknown key",
			"[package]\nname = \"x\"\nflavor = \"mint\"\n",
			"unknown key",
		},
		{
			"malformed toml",
			"[package\nname = \"x\"\n",
			"failed to parse TOML",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			_, err := project.LoadManifest(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not mention %q", err, tt.errPart)
			}
		})
	}
}

func TestFindManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"x\"\n")
	leaf := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(leaf, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := project.FindManifest(leaf)
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if !ok {
		t.Fatal("expected to find the manifest from a nested directory")
	}
	if path != filepath.Join(root, project.ManifestName) {
		t.Errorf("path: got %q", path)
	}
}

func TestFindManifest_NotFound(t *testing.T) {
	_, ok, err := project.FindManifest(t.TempDir())
	if err != nil {
		t.Fatalf("FindManifest: %v", err)
	}
	if ok {
		t.Fatal("found a manifest where none exists")
	}
}

func TestScaffold(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hello")

	created, err := project.Scaffold(dir, "hello")
	if err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	if len(created) != 2 || created[0] != project.ManifestName || created[1] != project.DefaultEntry {
		t.Fatalf("created: got %v", created)
	}

	// The scaffolded project loads back clean.
	path, ok, err := project.FindManifest(dir)
	if err != nil || !ok {
		t.Fatalf("FindManifest after scaffold: ok=%v err=%v", ok, err)
	}
	m, err := project.LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest after scaffold: %v", err)
	}
	if m.Config.Package.Name != "hello" {
		t.Errorf("name: got %q", m.Config.Package.Name)
	}
	if _, err := os.Stat(m.EntryPath()); err != nil {
		t.Errorf("entry point missing: %v", err)
	}
}

func TestScaffold_RefusesSecondRun(t *testing.T) {
	dir := t.TempDir()
	if _, err := project.Scaffold(dir, "x"); err != nil {
		t.Fatalf("first Scaffold: %v", err)
	}

	_, err := project.Scaffold(dir, "x")
	if err == nil {
		t.Fatal("expected an error for an initialized directory")
	}
	if !strings.Contains(err.Error(), "already initialized") {
		t.Errorf("error: got %q", err)
	}
}

func TestScaffold_KeepsExistingEntry(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, filepath.FromSlash(project.DefaultEntry))
	if err := os.MkdirAll(filepath.Dir(entry), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	custom := "int main() {\n    return 42;\n}\n"
	if err := os.WriteFile(entry, []byte(custom), 0o644); err != nil {
		t.Fatalf("write entry: %v", err)
	}

	created, err := project.Scaffold(dir, "x")
	if err != nil {
		t.Fatalf("Scaffold: %v", err)
	}
	if len(created) != 1 || created[0] != project.ManifestName {
		t.Fatalf("created: got %v", created)
	}

	got, err := os.ReadFile(entry)
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	if string(got) != custom {
		t.Error("existing entry point was overwritten")
	}
}
