package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oxygen/internal/diagfmt"
	"oxygen/internal/driver"
	"oxygen/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.o2",
	Short: "Parse an Oxygen source file and output its syntax tree",
	Long:  `Parse runs the tokenizer and parser over an Oxygen source file and prints the resulting tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Bool("display-tokens", false, "also print the token stream")
	// Legacy spelling kept for scripts written against the old CLI.
	_ = parseCmd.Flags().MarkHidden("display-tokens")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	displayTokens, err := cmd.Flags().GetBool("display-tokens")
	if err != nil {
		return err
	}

	file, err := source.Load(args[0])
	if err != nil {
		return err
	}

	result, scanErrs, parseErr := driver.ParseFile(file)

	if len(scanErrs) > 0 {
		useColor, colorErr := colorEnabled(cmd, os.Stderr)
		if colorErr != nil {
			return colorErr
		}
		opts := diagfmt.Options{Color: useColor}
		for _, e := range scanErrs {
			diagfmt.RenderScanError(os.Stderr, file.Path, e, opts)
		}
		return errReported
	}

	useColor, colorErr := colorEnabled(cmd, os.Stdout)
	if colorErr != nil {
		return colorErr
	}
	opts := diagfmt.Options{Color: useColor}

	if displayTokens {
		if err := diagfmt.FormatTokens(os.Stdout, result.Tokens, opts); err != nil {
			return err
		}
	}

	if parseErr != nil {
		errColor, colorErr := colorEnabled(cmd, os.Stderr)
		if colorErr != nil {
			return colorErr
		}
		diagfmt.RenderParseError(os.Stderr, file, parseErr, diagfmt.Options{Color: errColor})
		return errReported
	}

	switch format {
	case "pretty":
		if err := diagfmt.FormatProgram(os.Stdout, result.Program, opts); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatProgramJSON(os.Stdout, result.Program); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}
