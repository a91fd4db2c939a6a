package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bmillham/tag-test/internal/config"
	"github.com/bmillham/tag-test/internal/display"
	"github.com/bmillham/tag-test/internal/logger"
	"github.com/bmillham/tag-test/internal/metadata"
	"github.com/bmillham/tag-test/internal/scan"
)

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the configured directories for audio files",
		Long: `Scan every configured root, classify files by extension, and extract
metadata from files whose extension is in the valid-type list.

The estimate pass runs first and reports what a scan would find without
opening any file. The real pass follows and reads tags and duration from
every valid file, reporting each file that cannot be read.

Configuration is read from config.yaml unless --config points elsewhere.
A missing or malformed configuration aborts before any scanning.

Examples:
  tag-test scan
  tag-test scan --config /etc/tag-test/library.yaml
  tag-test scan --estimate-only       # Classify and count, extract nothing
  tag-test scan --verbose             # Narrate directories and tracks
  tag-test scan --log-level debug     # Include pass diagnostics`,
		Args: cobra.NoArgs,
		RunE: runScan,
	}

	cmd.Flags().String("config", "config.yaml", "Path to config file")
	cmd.Flags().Bool("estimate-only", false, "Run only the estimate pass, without metadata extraction")
	cmd.Flags().Bool("verbose", false, "Narrate every directory and extracted track")
	cmd.Flags().String("log-level", "", "Override configured log level (trace, debug, info, warn, error)")

	return cmd
}

// runScan implements the scan command logic
func runScan(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// CLI flags override configuration file settings.
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.General.Verbose = true
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.General.LogLevel = level
	}

	out := cmd.OutOrStdout()
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.General.LogLevel)
	runner := scan.NewRunner(cfg, metadata.NewExtractor(log), log)

	estimate := runner.Run(scan.ModeEstimate)
	display.Report{
		Label: "Estimate",
		Stats: estimate,
		Color: useColor(out),
	}.Render(out)

	if estimateOnly, _ := cmd.Flags().GetBool("estimate-only"); estimateOnly {
		return nil
	}

	results := runner.Run(scan.ModeFull)
	display.Report{
		Label:      "Scan results",
		Stats:      results,
		ShowErrors: true,
		Color:      useColor(out),
	}.Render(out)

	return nil
}

// useColor reports whether the writer is a terminal worth styling.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
