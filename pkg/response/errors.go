// Package response renders propconfig results and errors as chi/render
// HTTP responses for the demo command.
package response

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/fieldguard/propconfig/pkg/propconfig"
)

var ErrValidationFailed = errors.New("property validation failed")

// ErrResponse is the JSON shape rendered for every error path.
type ErrResponse struct {
	Err       error  `json:"-"`
	ErrorText string `json:"error,omitempty"`

	HTTPStatusCode int    `json:"-"`
	StatusText     string `json:"status"`

	ValidationErrors []ValidationErrorView `json:"validationErrors,omitempty"`
}

// ValidationErrorView is the wire shape of one propconfig.ValidationError.
type ValidationErrorView struct {
	PropertyName  string `json:"propertyName"`
	Message       string `json:"message"`
	ActualValue   string `json:"actualValue,omitempty"`
	ExpectedValue string `json:"expectedValue,omitempty"`
}

// Render satisfies render.Renderer by writing the HTTP status code; the
// body itself is encoded by chi/render's JSON responder.
func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// ErrInvalidRequest renders a malformed-request error (bad JSON, missing
// body) distinct from a propconfig validation failure.
func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		ErrorText:      err.Error(),
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request",
	}
}

// ErrValidation renders a non-passing propconfig.ValidationResult as a 422
// with one ValidationErrorView per ValidationError.
func ErrValidation(result propconfig.ValidationResult) render.Renderer {
	errs := result.Errors()
	views := make([]ValidationErrorView, len(errs))
	for i, e := range errs {
		views[i] = ValidationErrorView{
			PropertyName:  e.PropertyName,
			Message:       e.Message,
			ActualValue:   e.ActualValue,
			ExpectedValue: e.ExpectedValue,
		}
	}
	return &ErrResponse{
		Err:              ErrValidationFailed,
		ErrorText:        ErrValidationFailed.Error(),
		HTTPStatusCode:   http.StatusUnprocessableEntity,
		StatusText:       "Validation failed",
		ValidationErrors: views,
	}
}

// ErrNotFound renders a 404.
func ErrNotFound(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		ErrorText:      err.Error(),
		HTTPStatusCode: http.StatusNotFound,
		StatusText:     "Resource not found",
	}
}

// ErrInternal renders a 500.
func ErrInternal(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		ErrorText:      err.Error(),
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error",
	}
}
