// Package usecases contains application use cases that orchestrate business logic.
// It implements the occupation update and institution comment runs.
package usecases

import (
	"context"
	"fmt"

	"applicant-corrector/domain/dto"
	"applicant-corrector/domain/entities"
	"applicant-corrector/domain/errors"
	"applicant-corrector/domain/interfaces"
)

// addCommentsUseCase implements the AddCommentsUseCase interface.
type addCommentsUseCase struct {
	cmsClient     interfaces.CMSClient
	datasetLoader interfaces.DatasetLoader
	logger        interfaces.Logger
}

// NewAddCommentsUseCase creates a new add comments use case.
func NewAddCommentsUseCase(
	cmsClient interfaces.CMSClient,
	datasetLoader interfaces.DatasetLoader,
	logger interfaces.Logger,
) interfaces.AddCommentsUseCase {
	return &addCommentsUseCase{
		cmsClient:     cmsClient,
		datasetLoader: datasetLoader,
		logger:        logger,
	}
}

// Execute processes every dataset row sequentially, appending the fixed
// correction comment to each applicant's institution record. Row failures
// are recorded and never stop the run.
func (uc *addCommentsUseCase) Execute(
	ctx context.Context,
	params interfaces.AddCommentsParams,
) (*entities.RunSummary, error) {
	// Validate parameters
	if err := uc.validateParams(params); err != nil {
		return nil, err
	}

	uc.logger.Info("Starting add comment run", "dataset", params.DatasetPath)

	rows, err := uc.datasetLoader.Load(params.DatasetPath, entities.RunModeAddComment)
	if err != nil {
		uc.logger.Error("Failed to load dataset", "error", err)
		return nil, err
	}

	summary := &entities.RunSummary{
		Mode:         entities.RunModeAddComment,
		ErrorLogPath: params.Reporter.Path(),
	}

	payload := dto.CommentRequest{Comment: dto.CorrectionCommentText}

	for _, row := range rows {
		if ctx.Err() != nil {
			uc.logger.Warn("Run cancelled, stopping before next row", "processed", summary.Processed)
			return summary, ctx.Err()
		}

		result := uc.cmsClient.AddComment(ctx, row.ApplicantID, row.InstitutionKey, payload)
		summary.Record(result)

		if result.OK() {
			params.Reporter.Success(fmt.Sprintf("Successfully add comment for applicant %s", row.ApplicantID))
		} else {
			params.Reporter.Failure(fmt.Sprintf(
				"Failed to add comment for applicant: %s - %s",
				row.ApplicantID, failureDetail(result)))
		}
	}

	uc.logger.Info("Add comment run completed",
		"processed", summary.Processed,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed)

	return summary, nil
}

// validateParams validates the run parameters.
func (uc *addCommentsUseCase) validateParams(params interfaces.AddCommentsParams) error {
	validationErr := &errors.ValidationError{}

	if params.DatasetPath == "" {
		validationErr.AddFieldError("dataset_path", "dataset path is required")
	}

	if params.Reporter == nil {
		validationErr.AddFieldError("reporter", "row reporter is required")
	}

	if validationErr.HasErrors() {
		return validationErr
	}

	return nil
}
