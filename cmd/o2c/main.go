// Package main implements the o2c CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"oxygen/internal/version"
)

// errReported says diagnostics already went to stderr; the process should
// exit 1 without printing anything else.
var errReported = errors.New("")

var rootCmd = &cobra.Command{
	Use:           "o2c",
	Short:         "Oxygen compiler front end",
	Long:          `o2c tokenizes, parses and checks Oxygen source files`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Exit codes: 0 clean, 1 diagnostics reported, 2 usage and IO errors.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionsCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|never)")

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errReported) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
