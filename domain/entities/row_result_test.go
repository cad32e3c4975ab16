package entities

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRowResult_Success(t *testing.T) {
	result := Success()
	assert.True(t, result.OK())
	assert.Equal(t, RowStatusSuccess, result.Status)
	assert.Empty(t, result.Code)
}

func TestRowResult_TransportFailure(t *testing.T) {
	t.Run("carries cause text", func(t *testing.T) {
		result := TransportFailure(errors.New("connection refused"))
		assert.False(t, result.OK())
		assert.Equal(t, RowStatusTransportFailure, result.Status)
		assert.Equal(t, TransportErrorCode, result.Code)
		assert.Equal(t, "connection refused", result.Desc)
		assert.Equal(t, UnknownErrorData, result.Data)
	})

	t.Run("nil cause falls back to placeholder", func(t *testing.T) {
		result := TransportFailure(nil)
		assert.Equal(t, UnknownErrorDesc, result.Desc)
	})
}

func TestRowResult_ApplicationFailure(t *testing.T) {
	t.Run("carries diagnostics", func(t *testing.T) {
		result := ApplicationFailure("5", "invalid key", "occupation_key")
		assert.False(t, result.OK())
		assert.Equal(t, RowStatusApplicationFailure, result.Status)
		assert.Equal(t, "5", result.Code)
		assert.Equal(t, "invalid key", result.Desc)
		assert.Equal(t, "occupation_key", result.Data)
	})

	t.Run("empty diagnostics collapse to placeholders", func(t *testing.T) {
		result := ApplicationFailure("5", "", "")
		assert.Equal(t, UnknownErrorDesc, result.Desc)
		assert.Equal(t, UnknownErrorData, result.Data)
	})
}

func TestRunSummary_Record(t *testing.T) {
	var summary RunSummary
	summary.Record(Success())
	summary.Record(ApplicationFailure("5", "invalid key", ""))
	summary.Record(TransportFailure(errors.New("timeout")))

	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
}
