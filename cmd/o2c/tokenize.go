package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oxygen/internal/diagfmt"
	"oxygen/internal/driver"
	"oxygen/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.o2",
	Short: "Tokenize an Oxygen source file",
	Long:  `Tokenize breaks an Oxygen source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	file, err := source.Load(args[0])
	if err != nil {
		return err
	}

	tokens, scanErrs := driver.TokenizeFile(file)

	// Lexical errors go to stderr; the token stream still prints.
	if len(scanErrs) > 0 {
		useColor, colorErr := colorEnabled(cmd, os.Stderr)
		if colorErr != nil {
			return colorErr
		}
		opts := diagfmt.Options{Color: useColor}
		for _, e := range scanErrs {
			diagfmt.RenderScanError(os.Stderr, file.Path, e, opts)
		}
	}

	switch format {
	case "pretty":
		useColor, colorErr := colorEnabled(cmd, os.Stdout)
		if colorErr != nil {
			return colorErr
		}
		if err := diagfmt.FormatTokens(os.Stdout, tokens, diagfmt.Options{Color: useColor}); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatTokensJSON(os.Stdout, tokens); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if len(scanErrs) > 0 {
		return errReported
	}
	return nil
}
