// Package commands provides CLI command implementations for the applicant corrector tool.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// OutputFormatter handles structured output rendering for commands.
type OutputFormatter struct {
	format string
	writer io.Writer
}

// NewOutputFormatter creates a new output formatter writing to writer.
func NewOutputFormatter(format string, writer io.Writer) *OutputFormatter {
	return &OutputFormatter{
		format: format,
		writer: writer,
	}
}

// Print formats and prints the data according to the configured format.
func (f *OutputFormatter) Print(data interface{}) error {
	// Convert through JSON so every format shares the json tag names.
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}

	switch f.format {
	case OutputFormatJSON:
		// Pretty print JSON
		var prettyJSON interface{}
		if err := json.Unmarshal(jsonBytes, &prettyJSON); err != nil {
			return fmt.Errorf("failed to unmarshal JSON: %w", err)
		}
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(prettyJSON)

	case OutputFormatYAML:
		// Convert JSON to YAML
		var doc interface{}
		if err := json.Unmarshal(jsonBytes, &doc); err != nil {
			return fmt.Errorf("failed to unmarshal JSON for YAML conversion: %w", err)
		}
		yamlBytes, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		_, err = f.writer.Write(yamlBytes)
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", f.format)
	}
}

// ValidateFormat checks if the output format is valid.
func ValidateFormat(format string) error {
	switch format {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (supported: text, json, yaml)", format)
	}
}
