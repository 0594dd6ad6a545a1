package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"oxygen/internal/diagfmt"
	"oxygen/internal/driver"
	"oxygen/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [paths...]",
	Short: "Check Oxygen source files",
	Long: `Check tokenizes and parses the given files, or every *.o2 file under
the given directories, in parallel. With no paths it checks the entry
point recorded in oxygen.toml.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "skip the result cache")
	checkCmd.Flags().String("ui", "auto", "progress interface (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		manifestPath, found, err := project.FindManifest(".")
		if err != nil {
			return err
		}
		if !found {
			return errors.New("no paths given and no oxygen.toml found (run o2c init first)")
		}
		manifest, err := project.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
		paths = []string{manifest.EntryPath()}
	}

	files, err := driver.ExpandPaths(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no .o2 files to check")
	}

	opts := driver.CheckOptions{Jobs: jobs, NoCache: noCache}
	if !noCache {
		// A cache that cannot be opened is skipped, not fatal.
		if cache, cacheErr := driver.OpenDiskCache("oxygen"); cacheErr == nil {
			opts.Cache = cache
		}
	}

	start := time.Now()
	var reports []driver.FileReport
	if shouldUseTUI(uiModeValue) {
		reports, err = runCheckWithUI(cmd.Context(), "o2c check", files, opts)
	} else {
		reports, err = driver.CheckFiles(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}

	return reportCheckResults(cmd, reports, time.Since(start))
}

func reportCheckResults(cmd *cobra.Command, reports []driver.FileReport, elapsed time.Duration) error {
	useColor, err := colorEnabled(cmd, os.Stderr)
	if err != nil {
		return err
	}
	opts := diagfmt.Options{Color: useColor}

	clean, cached := 0, 0
	for i := range reports {
		r := &reports[i]
		if r.Cached {
			cached++
		}
		if r.Clean() {
			clean++
			continue
		}
		switch {
		case r.LoadErr != nil:
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", r.Path, r.LoadErr)
		case len(r.ScanErrors) > 0:
			for _, e := range r.ScanErrors {
				diagfmt.RenderScanError(os.Stderr, r.Path, e, opts)
			}
		case r.ParseErr != nil:
			diagfmt.RenderParseError(os.Stderr, r.File, r.ParseErr, opts)
		}
	}

	failed := len(reports) - clean
	noun := "files"
	if len(reports) == 1 {
		noun = "file"
	}
	line := fmt.Sprintf("checked %d %s in %.1f ms: %d ok", len(reports), noun, toMillis(elapsed), clean)
	if failed > 0 {
		line += fmt.Sprintf(", %d failed", failed)
	}
	if cached > 0 {
		line += fmt.Sprintf(" (%d cached)", cached)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)

	if failed > 0 {
		return errReported
	}
	return nil
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
