package errors

import (
	"errors"
	"io/fs"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCErrors(t *testing.T) {
	tt := []struct {
		name       string
		err        CError
		kind       Kind
		statusCode int
		message    string
	}{
		{
			name:       "invalid count",
			err:        NewInvalidCount("0", 12),
			kind:       KindInvalidCount,
			statusCode: http.StatusBadRequest,
			message:    "Invalid count. Count must be between 1 and 12; got 0",
		},
		{
			name:       "invalid id",
			err:        NewInvalidId(FieldId, "25", "[2, 3, 4]"),
			kind:       KindInvalidId,
			statusCode: http.StatusBadRequest,
			message:    "Invalid id. ID must be in [2, 3, 4]; got 25",
		},
		{
			name:       "invalid category number",
			err:        NewInvalidId(FieldCategoryNumber, "25", "[2, 3, 4]"),
			kind:       KindInvalidId,
			statusCode: http.StatusBadRequest,
			message:    "Invalid category number. Category number must be one of [2, 3, 4]; got 25",
		},
		{
			name:       "internal inconsistency",
			err:        NewInternalInconsistency("category detail", 7),
			kind:       KindInternalInconsistency,
			statusCode: http.StatusInternalServerError,
			message:    "Internal inconsistency: category detail 7 passed validation but is missing from the catalog",
		},
		{
			name:       "not found",
			err:        NewNotFound("route"),
			kind:       KindNotFound,
			statusCode: http.StatusNotFound,
			message:    "This route doesn't exist",
		},
		{
			name:       "method not allowed",
			err:        NewMethodNotAllowed("POST"),
			kind:       KindMethodNotAllowed,
			statusCode: http.StatusMethodNotAllowed,
			message:    "Method POST is not allowed on this route",
		},
		{
			name:       "internal",
			err:        NewInternal(),
			kind:       KindInternal,
			statusCode: http.StatusInternalServerError,
			message:    "Unexpected error occurred",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.err.Kind())
			assert.Equal(t, tc.statusCode, tc.err.GetStatusCode())
			assert.Equal(t, tc.message, tc.err.Error())
		})
	}
}

func TestLoadError(t *testing.T) {
	var err error = NewLoadError("categories", fs.ErrNotExist)

	assert.Equal(t, "load categories: file does not exist", err.Error())
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "categories", loadErr.Dataset)
}
