// Package commands provides CLI command implementations for the applicant corrector tool.
package commands

// Output format constants.
const (
	// OutputFormatText represents plain text output format.
	OutputFormatText = "text"
	// OutputFormatJSON represents JSON output format.
	OutputFormatJSON = "json"
	// OutputFormatYAML represents YAML output format.
	OutputFormatYAML = "yaml"
)
