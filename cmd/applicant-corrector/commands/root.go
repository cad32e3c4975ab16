// Package commands provides CLI command implementations for the applicant corrector tool.
// It contains the update-occupations, add-comments, and version commands with their associated flags and handlers.
package commands

import (
	"fmt"
	"os"

	"applicant-corrector/infrastructure/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	container  *config.Container
)

// NewRootCommand creates the root command with its persistent flags and
// subcommands. Configuration is loaded after flag parsing so the --config
// flag takes effect.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "applicant-corrector",
		Short: "Applicant record correction tool",
		Long: `A batch tool for one-time corrections of applicant records through the
case-management API. It updates occupation records and appends institution
comments for every applicant listed in a CSV export.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			container, err = config.NewContainer(cfg)
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (default properties/config.properties)")

	rootCmd.AddCommand(
		NewUpdateOccupationsCommand(),
		NewAddCommentsCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}

// Execute runs the root command and returns the process exit code. Row
// failures do not fail the run; only startup errors exit non-zero.
func Execute() int {
	err := NewRootCommand().Execute()

	if container != nil {
		if cerr := container.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "Failed to close container: %v\n", cerr)
		}
	}

	if err != nil {
		return 1
	}

	return 0
}
