// Package commands provides CLI command implementations for the applicant corrector tool.
// It contains the update-occupations, add-comments, and version commands with their associated flags and handlers.
package commands

import (
	"fmt"

	"applicant-corrector/cmd/version"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Shows the version, git commit, build date, and runtime information.",
		// Build metadata needs no configuration file.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return nil
		},
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(version.Version())
		},
	}
}
