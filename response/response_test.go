package response

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "ctgapi/errors"
	"ctgapi/models"
)

func TestResults(t *testing.T) {
	tt := []struct {
		name   string
		result Result
		status int
		kind   cerr.Kind
		body   string
	}{
		{
			name:   "categories",
			result: Categories([]models.Category{{Id: 2, Title: "baseball"}}, nil),
			status: http.StatusOK,
			body:   `{"categories": [{"id": 2, "title": "baseball"}]}`,
		},
		{
			name:   "details",
			result: Details(map[int32]models.Detail{2: models.Detail(`{"origin":"United States"}`)}, nil),
			status: http.StatusOK,
			body:   `{"details": {"2": {"origin": "United States"}}}`,
		},
		{
			name:   "invalid count",
			result: Categories(nil, cerr.NewInvalidCount("0", 12)),
			status: http.StatusBadRequest,
			kind:   cerr.KindInvalidCount,
			body:   `{"error": "Invalid count. Count must be between 1 and 12; got 0"}`,
		},
		{
			name:   "invalid id",
			result: Categories(nil, cerr.NewInvalidId(cerr.FieldId, "25", "[2, 3]")),
			status: http.StatusBadRequest,
			kind:   cerr.KindInvalidId,
			body:   `{"error": "Invalid id. ID must be in [2, 3]; got 25"}`,
		},
		{
			name:   "invalid category number",
			result: Details(nil, cerr.NewInvalidId(cerr.FieldCategoryNumber, "25", "[2, 3]")),
			status: http.StatusBadRequest,
			kind:   cerr.KindInvalidId,
			body:   `{"error": "Invalid category number. Category number must be one of [2, 3]; got 25"}`,
		},
		{
			name:   "internal inconsistency",
			result: Details(nil, cerr.NewInternalInconsistency("category detail", 3)),
			status: http.StatusInternalServerError,
			kind:   cerr.KindInternalInconsistency,
			body:   `{"error": "Internal inconsistency: category detail 3 passed validation but is missing from the catalog"}`,
		},
		{
			name:   "not found",
			result: Fail(cerr.NewNotFound("route")),
			status: http.StatusNotFound,
			kind:   cerr.KindNotFound,
			body:   `{"error": "This route doesn't exist"}`,
		},
		{
			name:   "method not allowed",
			result: Fail(cerr.NewMethodNotAllowed("PATCH")),
			status: http.StatusMethodNotAllowed,
			kind:   cerr.KindMethodNotAllowed,
			body:   `{"error": "Method PATCH is not allowed on this route"}`,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.result.Status())
			assert.Equal(t, tc.kind, tc.result.Kind())
			assert.Equal(t, tc.kind == "", tc.result.Ok())

			w := httptest.NewRecorder()
			require.NoError(t, Write(w, tc.result))

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestResultStatusIgnoresCarriedCode(t *testing.T) {
	err := cerr.InvalidCount{Value: "0", Total: 1}
	assert.Equal(t, http.StatusBadRequest, Fail(err).Status())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Success(nil).Message())
	assert.Equal(t, "Unexpected error occurred", Fail(cerr.NewInternal()).Message())
}

func TestWriteEncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	err := Write(w, Success(map[string]float64{"bad": math.Inf(1)}))

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Unexpected error occurred", body.Error)
}
