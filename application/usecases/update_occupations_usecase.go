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

// updateOccupationsUseCase implements the UpdateOccupationsUseCase interface.
type updateOccupationsUseCase struct {
	cmsClient     interfaces.CMSClient
	datasetLoader interfaces.DatasetLoader
	logger        interfaces.Logger
}

// NewUpdateOccupationsUseCase creates a new update occupations use case.
func NewUpdateOccupationsUseCase(
	cmsClient interfaces.CMSClient,
	datasetLoader interfaces.DatasetLoader,
	logger interfaces.Logger,
) interfaces.UpdateOccupationsUseCase {
	return &updateOccupationsUseCase{
		cmsClient:     cmsClient,
		datasetLoader: datasetLoader,
		logger:        logger,
	}
}

// Execute processes every dataset row sequentially. Row failures are recorded
// and never stop the run; only config, dataset, and cancellation conditions
// surface as errors.
func (uc *updateOccupationsUseCase) Execute(
	ctx context.Context,
	params interfaces.UpdateOccupationsParams,
) (*entities.RunSummary, error) {
	// Validate parameters
	if err := uc.validateParams(params); err != nil {
		return nil, err
	}

	uc.logger.Info("Starting occupation update run", "dataset", params.DatasetPath)

	rows, err := uc.datasetLoader.Load(params.DatasetPath, entities.RunModeOccupationUpdate)
	if err != nil {
		uc.logger.Error("Failed to load dataset", "error", err)
		return nil, err
	}

	summary := &entities.RunSummary{
		Mode:         entities.RunModeOccupationUpdate,
		ErrorLogPath: params.Reporter.Path(),
	}

	for _, row := range rows {
		if ctx.Err() != nil {
			uc.logger.Warn("Run cancelled, stopping before next row", "processed", summary.Processed)
			return summary, ctx.Err()
		}

		result := uc.processRow(ctx, row)
		summary.Record(result)

		if result.OK() {
			params.Reporter.Success(fmt.Sprintf("Successfully updated occupation for applicant %s", row.ApplicantID))
		} else {
			params.Reporter.Failure(fmt.Sprintf(
				"Failed to update occupation for applicant %s - %s",
				row.ApplicantID, failureDetail(result)))
		}
	}

	uc.logger.Info("Occupation update run completed",
		"processed", summary.Processed,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed)

	return summary, nil
}

// validateParams validates the run parameters.
func (uc *updateOccupationsUseCase) validateParams(params interfaces.UpdateOccupationsParams) error {
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

// processRow normalizes one row and issues the occupation update.
func (uc *updateOccupationsUseCase) processRow(ctx context.Context, row entities.CorrectionRow) entities.RowResult {
	payload := dto.OccupationUpdateRequest{
		EmploymentKey:           row.EmploymentKey,
		OccupationKey:           entities.PadOccupationKey(row.OccupationKey),
		IsPublicPolitician:      false,
		IsCriminalInvestigation: false,
	}

	return uc.cmsClient.UpdateOccupation(ctx, row.ApplicantID, payload)
}

// failureDetail renders the diagnostic suffix shared by both run modes.
func failureDetail(result entities.RowResult) string {
	return fmt.Sprintf("Error code: %s, Description: %s, Data: %s",
		result.Code, result.Desc, result.Data)
}
