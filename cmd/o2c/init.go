package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"oxygen/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new Oxygen project",
	Long: `Initialize a new Oxygen project by creating a project manifest
(oxygen.toml) and a starter entry point (src/main.o2). If [path|name] is
omitted, initializes the current directory. If a non-existing name is
provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("name", "", "package name (default: directory basename)")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	if !filepath.IsAbs(target) {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = filepath.Join(wd, target)
	}

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return err
	}
	if name == "" {
		// Derive the package name from the directory basename.
		name = strings.TrimSpace(filepath.Base(target))
		if name == "" || name == "." || name == string(filepath.Separator) {
			name = "oxygen-project"
		}
	}

	created, err := project.Scaffold(target, name)
	if err != nil {
		return err
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized Oxygen project in %s\n", rel)
	for _, path := range created {
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", path)
	}
	return nil
}
