// Package entities contains the core domain entities for the applicant corrector.
// It defines correction rows, row results, and run summaries.
package entities

import "strings"

// RunMode identifies which correction a run performs. The mode name is also
// the prefix of the per-run error log file.
type RunMode string

// Run mode constants.
const (
	RunModeOccupationUpdate RunMode = "occupation_update"
	RunModeAddComment       RunMode = "add_comment"
)

// OccupationKeyWidth is the fixed width of an occupation key code.
const OccupationKeyWidth = 3

// CorrectionRow represents one applicant correction record from the input
// dataset. Every field is opaque text; the occupation key must never be
// handled numerically because its leading zeros are significant.
type CorrectionRow struct {
	ApplicantID    string
	InstitutionKey string
	EmploymentKey  string
	OccupationKey  string
}

// PadOccupationKey left-pads an all-digit key shorter than OccupationKeyWidth
// with zeros. Keys at or above the width, empty keys, and keys containing any
// non-digit character pass through unchanged. Applying it twice gives the
// same result as applying it once.
func PadOccupationKey(key string) string {
	if len(key) == 0 || len(key) >= OccupationKeyWidth {
		return key
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return key
		}
	}
	return strings.Repeat("0", OccupationKeyWidth-len(key)) + key
}
