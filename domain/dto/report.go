package dto

import "time"

// RunReport is the serializable form of a run summary for structured output.
type RunReport struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	Mode        string    `json:"mode" yaml:"mode"`
	Processed   int       `json:"processed" yaml:"processed"`
	Succeeded   int       `json:"succeeded" yaml:"succeeded"`
	Failed      int       `json:"failed" yaml:"failed"`
	ErrorLog    string    `json:"error_log" yaml:"error_log"`
	CompletedAt time.Time `json:"completed_at" yaml:"completed_at"`
}
