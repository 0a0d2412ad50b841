package errs

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "UNPROCESSABLE_ENTITY", MakeUpperCaseWithUnderscores("Unprocessable Entity"))
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)))
	assert.Equal(t, "", MakeUpperCaseWithUnderscores(""))
}

func TestConstructors(t *testing.T) {
	custom := "CUSTOM"

	tests := []struct {
		name     string
		err      *HTTPError
		status   int
		code     string
		override bool
	}{
		{name: "bad request", err: NewBadRequestError("bad", true, nil, nil), status: http.StatusBadRequest, code: "BAD_REQUEST", override: true},
		{name: "bad request with code", err: NewBadRequestError("bad", false, &custom, nil), status: http.StatusBadRequest, code: custom},
		{name: "unprocessable", err: NewUnprocessableEntityError("Validation failed", nil), status: http.StatusUnprocessableEntity, code: CodeValidationFailed, override: true},
		{name: "not found", err: NewNotFoundError("missing", false, nil), status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "too many requests", err: NewTooManyRequestsError("slow down"), status: http.StatusTooManyRequests, code: "TOO_MANY_REQUESTS", override: true},
		{name: "internal", err: NewInternalServerError(), status: http.StatusInternalServerError, code: "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.override, tt.err.Override)
		})
	}
}

func TestNewInternalServerError_HidesCause(t *testing.T) {
	assert.Equal(t, "Internal Server Error", NewInternalServerError().Error())
}

func TestHTTPError_JSON(t *testing.T) {
	body, err := json.Marshal(NewUnprocessableEntityError("Validation failed", []FieldError{
		{Field: "username", Error: "must not contain spaces"},
	}))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"code": "VALIDATION_FAILED",
		"message": "Validation failed",
		"status": 422,
		"override": true,
		"errors": [{"field": "username", "error": "must not contain spaces"}]
	}`, string(body))
}
