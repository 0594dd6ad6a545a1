package version

import (
	"testing"
)

func TestVersion_DefaultValue(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion := Version
	origCommit := Commit
	origDate := Date
	defer func() {
		Version = origVersion
		Commit = origCommit
		Date = origDate
	}()

	// Simulates build-time ldflags.
	Version = "1.2.3"
	Commit = "abc123def456"
	Date = "2026-01-15T10:30:00Z"

	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
	if Commit != "abc123def456" {
		t.Errorf("Commit = %q, want %q", Commit, "abc123def456")
	}
	if Date != "2026-01-15T10:30:00Z" {
		t.Errorf("Date = %q, want %q", Date, "2026-01-15T10:30:00Z")
	}
}

func TestString(t *testing.T) {
	origVersion := Version
	origCommit := Commit
	origDate := Date
	defer func() {
		Version = origVersion
		Commit = origCommit
		Date = origDate
	}()

	Version = "1.2.3"

	tests := []struct {
		name   string
		commit string
		date   string
		want   string
	}{
		{"bare", "", "", "1.2.3"},
		{"commit only", "abc123", "", "1.2.3 (abc123)"},
		{"date only", "", "2026-01-15", "1.2.3 (2026-01-15)"},
		{"commit and date", "abc123", "2026-01-15", "1.2.3 (abc123, 2026-01-15)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Commit = tt.commit
			Date = tt.date
			if got := String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
