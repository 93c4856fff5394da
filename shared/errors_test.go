package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceErrorFormat(t *testing.T) {
	err := NewServiceError(ErrorCategoryValidation, "UNSUPPORTED_FILE_TYPE", "bad extension", "Upload_Service", "accept_spreadsheet", false, nil)

	assert.Equal(t, "[validation:UNSUPPORTED_FILE_TYPE] bad extension", err.Error())
	assert.False(t, err.Retryable)
	assert.Equal(t, "Upload_Service", err.ServiceName)
}

func TestServiceErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("short read")
	err := NewServiceError(ErrorCategoryProcessing, "UPLOAD_READ_FAILED", "read failed", "Upload_Service", "accept_spreadsheet", true, cause)

	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))
}

func TestWrapErrorNil(t *testing.T) {
	assert.Nil(t, WrapError(nil, ErrorCategoryProcessing, "X", "svc", "op", false))
}

func TestWrapErrorPlainError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	wrapped := WrapError(cause, ErrorCategoryResource, "WRITE_FAILED", "Export_Service", "write_csv", false)

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrorCategoryResource, wrapped.Category)
	assert.Equal(t, "disk full", wrapped.Message)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestWrapErrorExistingServiceError(t *testing.T) {
	original := NewServiceError(ErrorCategoryValidation, "UNKNOWN_COMMODITY", "unknown", "Chart_Service", "build_trend_chart", false, nil)
	wrapped := WrapError(original, ErrorCategoryProcessing, "IGNORED", "Dashboard_Service", "build_dashboard", true)

	// Existing service errors keep their category and code; only the
	// service/operation context is updated.
	assert.Same(t, original, wrapped)
	assert.Equal(t, ErrorCategoryValidation, wrapped.Category)
	assert.Equal(t, "UNKNOWN_COMMODITY", wrapped.Code)
	assert.Equal(t, "Dashboard_Service", wrapped.ServiceName)
	assert.Equal(t, "build_dashboard", wrapped.Operation)
}
