package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldguard/propconfig/pkg/propconfig"
)

func TestErrResponse_Render(t *testing.T) {
	tests := []struct {
		name           string
		errResponse    *ErrResponse
		expectedStatus int
	}{
		{"Bad Request", &ErrResponse{HTTPStatusCode: http.StatusBadRequest}, http.StatusBadRequest},
		{"Not Found", &ErrResponse{HTTPStatusCode: http.StatusNotFound}, http.StatusNotFound},
		{"Internal Server Error", &ErrResponse{HTTPStatusCode: http.StatusInternalServerError}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", "/", nil)

			err := tt.errResponse.Render(w, r)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, r.Context().Value(render.StatusCtxKey))
		})
	}
}

func TestErrInvalidRequest(t *testing.T) {
	testErr := errors.New("malformed body")

	renderer := ErrInvalidRequest(testErr)
	errResp, ok := renderer.(*ErrResponse)
	require.True(t, ok)

	assert.Equal(t, testErr, errResp.Err)
	assert.Equal(t, testErr.Error(), errResp.ErrorText)
	assert.Equal(t, http.StatusBadRequest, errResp.HTTPStatusCode)
	assert.Equal(t, "Invalid request", errResp.StatusText)
	assert.Nil(t, errResp.ValidationErrors)
}

func TestErrValidation(t *testing.T) {
	result := propconfig.Failure(
		propconfig.NewValidationError("server.port", "Type conversion failed").
			WithActual("not a number").WithExpected("Value of type Integer"),
		propconfig.NewValidationError("app.name", "Value length 1 is less than minimum 3").
			WithActual("x"),
	)

	renderer := ErrValidation(result)
	errResp, ok := renderer.(*ErrResponse)
	require.True(t, ok)

	assert.Equal(t, ErrValidationFailed, errResp.Err)
	assert.Equal(t, http.StatusUnprocessableEntity, errResp.HTTPStatusCode)
	assert.Equal(t, "Validation failed", errResp.StatusText)
	require.Len(t, errResp.ValidationErrors, 2)
	assert.Equal(t, "server.port", errResp.ValidationErrors[0].PropertyName)
	assert.Equal(t, "not a number", errResp.ValidationErrors[0].ActualValue)
	assert.Equal(t, "app.name", errResp.ValidationErrors[1].PropertyName)
}

func TestErrNotFound(t *testing.T) {
	testErr := errors.New("schema file not found")

	renderer := ErrNotFound(testErr)
	errResp, ok := renderer.(*ErrResponse)
	require.True(t, ok)

	assert.Equal(t, testErr, errResp.Err)
	assert.Equal(t, http.StatusNotFound, errResp.HTTPStatusCode)
	assert.Equal(t, "Resource not found", errResp.StatusText)
}

func TestErrInternal(t *testing.T) {
	testErr := errors.New("cache eviction sweep failed")

	renderer := ErrInternal(testErr)
	errResp, ok := renderer.(*ErrResponse)
	require.True(t, ok)

	assert.Equal(t, testErr, errResp.Err)
	assert.Equal(t, http.StatusInternalServerError, errResp.HTTPStatusCode)
	assert.Equal(t, "Internal server error", errResp.StatusText)
}
