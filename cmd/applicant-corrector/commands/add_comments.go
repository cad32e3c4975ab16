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

// NewAddCommentsCommand creates the add-comments command.
func NewAddCommentsCommand() *cobra.Command {
	var (
		sourcePath   string
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "add-comments",
		Short: "Append the correction comment to every applicant in the dataset",
		Long: `Reads the correction dataset and posts the explanatory correction comment
to each applicant's institution record. Row failures are reported and
skipped; the run always continues to the end of the dataset.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := ValidateFormat(outputFormat); err != nil {
				return err
			}

			reporter, err := runlog.NewFileReporter(entities.RunModeAddComment, container.Config.Log.Dir, os.Stdout)
			if err != nil {
				return fmt.Errorf("failed to open run reporter: %w", err)
			}
			defer func() {
				if err := reporter.Close(); err != nil {
					container.Logger.Error("Failed to close run reporter", "error", err)
				}
			}()

			params := interfaces.AddCommentsParams{
				DatasetPath: resolveDatasetPath(sourcePath, container.Config.Source.CSVPath),
				Reporter:    reporter,
			}

			container.Logger.Info("Starting comment run",
				"source", params.DatasetPath,
				"errorLog", reporter.Path())

			summary, err := container.AddCommentsUseCase.Execute(context.Background(), params)
			if err != nil {
				return fmt.Errorf("comment run failed: %w", err)
			}

			return printSummary(summary, outputFormat, container.RunID)
		},
	}

	// Add flags.
	cmd.Flags().StringVarP(&sourcePath, "source", "s", "", "dataset file path (default from [Source] csv_path)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", OutputFormatText, "Summary format (text, json, yaml)")

	return cmd
}
