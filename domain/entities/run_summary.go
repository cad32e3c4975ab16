// Package entities contains the core domain entities for the applicant corrector.
// It defines correction rows, row results, and run summaries.
package entities

// RunSummary represents the aggregate outcome of one correction run.
type RunSummary struct {
	Mode         RunMode
	Processed    int
	Succeeded    int
	Failed       int
	ErrorLogPath string
}

// Record counts one row result into the summary.
func (s *RunSummary) Record(result RowResult) {
	s.Processed++
	if result.OK() {
		s.Succeeded++
	} else {
		s.Failed++
	}
}
