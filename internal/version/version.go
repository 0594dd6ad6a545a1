package version

import "github.com/fatih/color"

// Version information for the o2c CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = versionMajorColor.Sprint("0") + "." + versionMinorColor.Sprint("1") + "." + versionPatchColor.Sprint("0") + "-dev"

	// Commit is an optional git commit hash.
	Commit = ""

	// Date is an optional build date in ISO-8601.
	Date = ""
)

// String returns the version followed by whatever build metadata was
// recorded, on one line.
func String() string {
	s := Version
	switch {
	case Commit != "" && Date != "":
		s += " (" + Commit + ", " + Date + ")"
	case Commit != "":
		s += " (" + Commit + ")"
	case Date != "":
		s += " (" + Date + ")"
	}
	return s
}
