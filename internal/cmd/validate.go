package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bmillham/tag-test/internal/config"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate a configuration file",
		Long: `Parse and validate a configuration file, checking for:
  - Readable, well-formed YAML
  - At least one scan root, none blank
  - At least one valid extension
  - A recognized log level

Defaults to config.yaml when no file is given.

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "config.yaml"
			if len(args) == 1 {
				path = args[0]
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s is valid\n", path)
			fmt.Fprintf(out, "  Scan roots: %d\n", len(cfg.Directories.Scan))
			for _, root := range cfg.Directories.Scan {
				fmt.Fprintf(out, "    - %s\n", root)
			}
			fmt.Fprintf(out, "  Valid types: %s\n", strings.Join(cfg.Types.Valid, ", "))
			fmt.Fprintf(out, "  Verbose: %v\n", cfg.General.Verbose)
			fmt.Fprintf(out, "  Log level: %s\n", cfg.General.LogLevel)

			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
