package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"oxygen/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show o2c version and build metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "o2c %s\n", version.String())
		return err
	},
}
