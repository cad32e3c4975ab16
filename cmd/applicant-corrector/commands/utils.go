// Package commands provides CLI command implementations for the applicant corrector tool.
package commands

import (
	"fmt"
	"os"
	"time"

	"applicant-corrector/domain/dto"
	"applicant-corrector/domain/entities"
)

// resolveDatasetPath prefers the --source flag value over the configured path.
func resolveDatasetPath(flagValue, configured string) string {
	if flagValue != "" {
		return flagValue
	}

	return configured
}

// runReport converts a run summary into its serializable report form.
func runReport(summary *entities.RunSummary, runID string) dto.RunReport {
	return dto.RunReport{
		RunID:       runID,
		Mode:        string(summary.Mode),
		Processed:   summary.Processed,
		Succeeded:   summary.Succeeded,
		Failed:      summary.Failed,
		ErrorLog:    summary.ErrorLogPath,
		CompletedAt: time.Now(),
	}
}

// printSummary renders the run summary in the requested output format. The
// text form ends with the completion line naming the error log file.
func printSummary(summary *entities.RunSummary, format, runID string) error {
	if format == OutputFormatText {
		fmt.Printf("Processed %d rows: %d succeeded, %d failed\n",
			summary.Processed, summary.Succeeded, summary.Failed)
		fmt.Printf("Process completed. Log file for errors: %s\n", summary.ErrorLogPath)
		return nil
	}

	return NewOutputFormatter(format, os.Stdout).Print(runReport(summary, runID))
}
