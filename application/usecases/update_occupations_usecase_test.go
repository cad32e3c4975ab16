package usecases

import (
	"context"
	"testing"

	"applicant-corrector/domain/dto"
	"applicant-corrector/domain/entities"
	"applicant-corrector/domain/errors"
	"applicant-corrector/domain/interfaces"
	"applicant-corrector/test/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateOccupationsUseCase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockCMSClient(ctrl)
	mockLoader := mocks.NewMockDatasetLoader(ctrl)
	mockReporter := mocks.NewMockRowReporter(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	// Set up logger expectations
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockReporter.EXPECT().Path().Return("log/occupation_update_errors_20250101_120000.log").AnyTimes()

	useCase := NewUpdateOccupationsUseCase(mockClient, mockLoader, mockLogger)
	ctx := context.Background()

	params := interfaces.UpdateOccupationsParams{
		DatasetPath: "source/2025_occupation_fix.csv",
		Reporter:    mockReporter,
	}

	t.Run("successful run pads the occupation key", func(t *testing.T) {
		rows := []entities.CorrectionRow{
			{ApplicantID: "A1", EmploymentKey: "E9", OccupationKey: "7"},
			{ApplicantID: "A2", EmploymentKey: "E2", OccupationKey: "042"},
		}

		mockLoader.EXPECT().
			Load(params.DatasetPath, entities.RunModeOccupationUpdate).
			Return(rows, nil)

		mockClient.EXPECT().
			UpdateOccupation(ctx, "A1", dto.OccupationUpdateRequest{
				EmploymentKey:           "E9",
				OccupationKey:           "007",
				IsPublicPolitician:      false,
				IsCriminalInvestigation: false,
			}).
			Return(entities.Success())

		mockClient.EXPECT().
			UpdateOccupation(ctx, "A2", dto.OccupationUpdateRequest{
				EmploymentKey:           "E2",
				OccupationKey:           "042",
				IsPublicPolitician:      false,
				IsCriminalInvestigation: false,
			}).
			Return(entities.Success())

		mockReporter.EXPECT().Success("Successfully updated occupation for applicant A1")
		mockReporter.EXPECT().Success("Successfully updated occupation for applicant A2")

		summary, err := useCase.Execute(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, entities.RunModeOccupationUpdate, summary.Mode)
		assert.Equal(t, 2, summary.Processed)
		assert.Equal(t, 2, summary.Succeeded)
		assert.Equal(t, 0, summary.Failed)
		assert.Equal(t, "log/occupation_update_errors_20250101_120000.log", summary.ErrorLogPath)
	})

	t.Run("application failure is reported and does not stop the run", func(t *testing.T) {
		rows := []entities.CorrectionRow{
			{ApplicantID: "A1", EmploymentKey: "E9", OccupationKey: "7"},
			{ApplicantID: "A2", EmploymentKey: "E2", OccupationKey: "100"},
		}

		mockLoader.EXPECT().
			Load(params.DatasetPath, entities.RunModeOccupationUpdate).
			Return(rows, nil)

		mockClient.EXPECT().
			UpdateOccupation(ctx, "A1", gomock.Any()).
			Return(entities.ApplicationFailure("5", "invalid key", ""))

		mockClient.EXPECT().
			UpdateOccupation(ctx, "A2", gomock.Any()).
			Return(entities.Success())

		mockReporter.EXPECT().Failure(
			"Failed to update occupation for applicant A1 - Error code: 5, Description: invalid key, Data: Unknown data")
		mockReporter.EXPECT().Success("Successfully updated occupation for applicant A2")

		summary, err := useCase.Execute(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.Processed)
		assert.Equal(t, 1, summary.Succeeded)
		assert.Equal(t, 1, summary.Failed)
	})

	t.Run("transport failure is reported with the request exception code", func(t *testing.T) {
		rows := []entities.CorrectionRow{
			{ApplicantID: "A1", EmploymentKey: "E9", OccupationKey: "7"},
		}

		mockLoader.EXPECT().
			Load(params.DatasetPath, entities.RunModeOccupationUpdate).
			Return(rows, nil)

		mockClient.EXPECT().
			UpdateOccupation(ctx, "A1", gomock.Any()).
			Return(entities.TransportFailure(assert.AnError))

		mockReporter.EXPECT().Failure(
			"Failed to update occupation for applicant A1 - Error code: RequestException, Description: assert.AnError general error for testing, Data: Unknown data")

		summary, err := useCase.Execute(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Failed)
	})

	t.Run("empty dataset issues no calls", func(t *testing.T) {
		mockLoader.EXPECT().
			Load(params.DatasetPath, entities.RunModeOccupationUpdate).
			Return([]entities.CorrectionRow{}, nil)

		summary, err := useCase.Execute(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.Processed)
		assert.Equal(t, 0, summary.Succeeded)
		assert.Equal(t, 0, summary.Failed)
	})

	t.Run("dataset load error aborts the run", func(t *testing.T) {
		mockLoader.EXPECT().
			Load(params.DatasetPath, entities.RunModeOccupationUpdate).
			Return(nil, assert.AnError)

		summary, err := useCase.Execute(ctx, params)
		require.Error(t, err)
		assert.Nil(t, summary)
	})

	t.Run("validation error - missing dataset path", func(t *testing.T) {
		badParams := interfaces.UpdateOccupationsParams{Reporter: mockReporter}

		summary, err := useCase.Execute(ctx, badParams)
		require.Error(t, err)
		assert.Nil(t, summary)
		assert.Contains(t, err.Error(), "validation failed for 1 fields")
		validErr, ok := err.(*errors.ValidationError)
		require.True(t, ok)
		assert.Contains(t, validErr.Fields["dataset_path"][0], "dataset path is required")
	})

	t.Run("validation error - missing reporter", func(t *testing.T) {
		badParams := interfaces.UpdateOccupationsParams{DatasetPath: params.DatasetPath}

		summary, err := useCase.Execute(ctx, badParams)
		require.Error(t, err)
		assert.Nil(t, summary)
		validErr, ok := err.(*errors.ValidationError)
		require.True(t, ok)
		assert.Contains(t, validErr.Fields["reporter"][0], "row reporter is required")
	})

	t.Run("cancelled context stops between rows", func(t *testing.T) {
		cancelledCtx, cancel := context.WithCancel(context.Background())
		cancel()

		mockLoader.EXPECT().
			Load(params.DatasetPath, entities.RunModeOccupationUpdate).
			Return([]entities.CorrectionRow{{ApplicantID: "A1", OccupationKey: "7"}}, nil)

		summary, err := useCase.Execute(cancelledCtx, params)
		require.Error(t, err)
		assert.Equal(t, context.Canceled, err)
		require.NotNil(t, summary)
		assert.Equal(t, 0, summary.Processed)
	})
}
