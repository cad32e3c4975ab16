// Package interfaces defines contracts for the applicant corrector domain layer.
// It contains interfaces for CMS access, dataset loading, run reporting, use cases, and logging.
package interfaces

import (
	"context"

	"applicant-corrector/domain/dto"
	"applicant-corrector/domain/entities"
)

// CMSClient calls the case-management API. Implementations classify every
// row outcome into a RowResult value; transport and application failures are
// results, not Go errors.
type CMSClient interface {
	// UpdateOccupation issues the occupation correction for one applicant.
	UpdateOccupation(ctx context.Context, applicantID string, payload dto.OccupationUpdateRequest) entities.RowResult

	// AddComment appends the correction comment to one applicant's institution record.
	AddComment(ctx context.Context, applicantID, institutionKey string, payload dto.CommentRequest) entities.RowResult

	// Close releases idle connections held by the client.
	Close() error
}
