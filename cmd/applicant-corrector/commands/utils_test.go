// Package commands provides CLI command implementations for the applicant corrector tool.
package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"applicant-corrector/domain/entities"
)

func TestResolveDatasetPath(t *testing.T) {
	assert.Equal(t, "override.csv", resolveDatasetPath("override.csv", "configured.csv"))
	assert.Equal(t, "configured.csv", resolveDatasetPath("", "configured.csv"))
}

func TestRunReport(t *testing.T) {
	summary := &entities.RunSummary{
		Mode:         entities.RunModeAddComment,
		Processed:    3,
		Succeeded:    2,
		Failed:       1,
		ErrorLogPath: "log/add_comment_errors_20250611_100000.log",
	}

	report := runReport(summary, "run-123")

	assert.Equal(t, "run-123", report.RunID)
	assert.Equal(t, "add_comment", report.Mode)
	assert.Equal(t, 3, report.Processed)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, summary.ErrorLogPath, report.ErrorLog)
	assert.False(t, report.CompletedAt.IsZero())
}
