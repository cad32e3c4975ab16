// Package commands provides CLI command implementations for the applicant corrector tool.
// It contains the update-occupations, add-comments, and version commands with their associated flags and handlers.
package commands

import (
	"context"
	"fmt"
	"os"

	"applicant-corrector/domain/entities"
	"applicant-corrector/domain/interfaces"
	"applicant-corrector/infrastructure/runlog"
	"github.com/spf13/cobra"
)

// NewUpdateOccupationsCommand creates the update-occupations command.
func NewUpdateOccupationsCommand() *cobra.Command {
	var (
		sourcePath   string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "update-occupations",
		Short: "Update occupation records for every applicant in the dataset",
		Long: `Reads the correction dataset and issues one occupation update per row
against the case-management API. Row failures are reported and skipped; the
run always continues to the end of the dataset.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := ValidateFormat(outputFormat); err != nil {
				return err
			}

			reporter, err := runlog.NewFileReporter(entities.RunModeOccupationUpdate, container.Config.Log.Dir, os.Stdout)
			if err != nil {
				return fmt.Errorf("failed to open run reporter: %w", err)
			}
			defer func() {
				if err := reporter.Close(); err != nil {
					container.Logger.Error("Failed to close run reporter", "error", err)
				}
			}()

			params := interfaces.UpdateOccupationsParams{
				DatasetPath: resolveDatasetPath(sourcePath, container.Config.Source.CSVPath),
				Reporter:    reporter,
			}

			container.Logger.Info("Starting occupation update run",
				"source", params.DatasetPath,
				"errorLog", reporter.Path())

			summary, err := container.UpdateOccupationsUseCase.Execute(context.Background(), params)
			if err != nil {
				return fmt.Errorf("occupation update run failed: %w", err)
			}

			return printSummary(summary, outputFormat, container.RunID)
		},
	}

	// Add flags.
	cmd.Flags().StringVarP(&sourcePath, "source", "s", "", "dataset file path (default from [Source] csv_path)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", OutputFormatText, "Summary format (text, json, yaml)")

	return cmd
}
