// Package interfaces defines contracts for the applicant corrector domain layer.
// It contains interfaces for CMS access, dataset loading, run reporting, use cases, and logging.
package interfaces

import (
	"context"

	"applicant-corrector/domain/entities"
)

// UpdateOccupationsUseCase handles the business logic for the occupation
// correction run.
type UpdateOccupationsUseCase interface {
	// Execute processes every dataset row sequentially and returns the run summary.
	Execute(ctx context.Context, params UpdateOccupationsParams) (*entities.RunSummary, error)
}

// UpdateOccupationsParams represents parameters for an occupation correction run.
type UpdateOccupationsParams struct {
	DatasetPath string
	Reporter    RowReporter
}

// AddCommentsUseCase handles the business logic for the institution comment run.
type AddCommentsUseCase interface {
	// Execute processes every dataset row sequentially and returns the run summary.
	Execute(ctx context.Context, params AddCommentsParams) (*entities.RunSummary, error)
}

// AddCommentsParams represents parameters for an institution comment run.
type AddCommentsParams struct {
	DatasetPath string
	Reporter    RowReporter
}
