package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for tag-test
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag-test",
		Short: "Audio library scanner and tag reader",
		Long: `tag-test walks a configured set of directory trees, classifies every file
by extension, and reads tags and duration from the files recognized as audio.

Each run makes two passes over the same roots: an estimate pass that only
classifies and counts file names, then a real pass that also extracts
title, artist, album, genre, track number and duration from every valid
file. Per-file read failures are reported and counted but never stop a pass.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewScanCommand())
	cmd.AddCommand(NewValidateCommand())

	return cmd
}
