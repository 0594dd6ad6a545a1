package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// colorEnabled resolves the persistent --color flag against the stream the
// output will go to. "auto" colorizes only when that stream is a terminal.
func colorEnabled(cmd *cobra.Command, stream *os.File) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return isTerminal(stream), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|always|never)", value)
	}
}
