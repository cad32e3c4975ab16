package dataset

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"applicant-corrector/domain/entities"
	"applicant-corrector/domain/errors"
	"applicant-corrector/test/mocks"
)

func newTestLogger(t *testing.T) *mocks.MockLogger {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	return logger
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestCSVLoader_Load(t *testing.T) {
	loader := NewCSVLoader(newTestLogger(t))

	t.Run("loads occupation update rows", func(t *testing.T) {
		path := writeDataset(t, "Applican ID,Institution,Expected employment key,Expected occupation key\n"+
			"A100,INST-1,EMP-1,007\n"+
			"A200,INST-2,EMP-2,7\n")

		rows, err := loader.Load(path, entities.RunModeOccupationUpdate)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, entities.CorrectionRow{ApplicantID: "A100", EmploymentKey: "EMP-1", OccupationKey: "007"}, rows[0])
		assert.Equal(t, entities.CorrectionRow{ApplicantID: "A200", EmploymentKey: "EMP-2", OccupationKey: "7"}, rows[1])
	})

	t.Run("keeps cell values verbatim", func(t *testing.T) {
		path := writeDataset(t, "Applican ID,Expected employment key,Expected occupation key\n"+
			"A300, EMP ,  42\n")

		rows, err := loader.Load(path, entities.RunModeOccupationUpdate)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, " EMP ", rows[0].EmploymentKey)
		assert.Equal(t, "  42", rows[0].OccupationKey)
	})

	t.Run("loads comment rows", func(t *testing.T) {
		path := writeDataset(t, "Applican ID,Institution\nA100,INST-1\n")

		rows, err := loader.Load(path, entities.RunModeAddComment)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, entities.CorrectionRow{ApplicantID: "A100", InstitutionKey: "INST-1"}, rows[0])
	})

	t.Run("accepts corrected applicant header", func(t *testing.T) {
		path := writeDataset(t, "Applicant ID,Institution\nA100,INST-1\n")

		rows, err := loader.Load(path, entities.RunModeAddComment)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "A100", rows[0].ApplicantID)
	})

	t.Run("strips byte order mark from header", func(t *testing.T) {
		path := writeDataset(t, "\ufeffApplican ID,Institution\nA100,INST-1\n")

		rows, err := loader.Load(path, entities.RunModeAddComment)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "A100", rows[0].ApplicantID)
	})

	t.Run("trims header whitespace", func(t *testing.T) {
		path := writeDataset(t, " Applican ID , Institution \nA100,INST-1\n")

		rows, err := loader.Load(path, entities.RunModeAddComment)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, entities.CorrectionRow{ApplicantID: "A100", InstitutionKey: "INST-1"}, rows[0])
	})

	t.Run("header only file is an empty run", func(t *testing.T) {
		path := writeDataset(t, "Applican ID,Institution\n")

		rows, err := loader.Load(path, entities.RunModeAddComment)

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("missing applicant column is fatal", func(t *testing.T) {
		path := writeDataset(t, "Institution\nINST-1\n")

		rows, err := loader.Load(path, entities.RunModeAddComment)

		require.Error(t, err)
		assert.Nil(t, rows)
		assert.Contains(t, err.Error(), `required column "Applican ID" not found`)
		assert.True(t, stderrors.Is(err, errors.ErrInvalidInput))

		var datasetErr *errors.DatasetError
		assert.True(t, stderrors.As(err, &datasetErr))
	})

	t.Run("missing occupation column is fatal", func(t *testing.T) {
		path := writeDataset(t, "Applican ID,Expected employment key\nA100,EMP-1\n")

		_, err := loader.Load(path, entities.RunModeOccupationUpdate)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `required column "Expected occupation key" not found`)
	})

	t.Run("missing institution column is fatal", func(t *testing.T) {
		path := writeDataset(t, "Applican ID,Expected employment key,Expected occupation key\nA100,EMP-1,007\n")

		_, err := loader.Load(path, entities.RunModeAddComment)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `required column "Institution" not found`)
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.csv")

		rows, err := loader.Load(path, entities.RunModeOccupationUpdate)

		require.Error(t, err)
		assert.Nil(t, rows)

		var datasetErr *errors.DatasetError
		require.True(t, stderrors.As(err, &datasetErr))
		assert.Equal(t, path, datasetErr.Path)
	})

	t.Run("malformed record is fatal", func(t *testing.T) {
		path := writeDataset(t, "Applican ID,Institution\nA100\n")

		_, err := loader.Load(path, entities.RunModeAddComment)

		require.Error(t, err)

		var datasetErr *errors.DatasetError
		assert.True(t, stderrors.As(err, &datasetErr))
	})

	t.Run("unknown run mode is rejected", func(t *testing.T) {
		path := writeDataset(t, "Applican ID,Institution\nA100,INST-1\n")

		_, err := loader.Load(path, entities.RunMode("bogus"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown run mode "bogus"`)
	})
}
