package apierr

import (
	"fmt"
	"net/http"
)

// APIError is the failure type returned by every service operation. The HTTP
// boundary maps it onto the error envelope; anything that is not an APIError
// is reported as an internal error.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func New(status int, message string, err error) *APIError {
	return &APIError{Status: status, Message: message, Err: err}
}

func BadRequest(message string) *APIError {
	return New(http.StatusBadRequest, message, nil)
}

// NotFound reports a missing resource, e.g. NotFound("Cliente").
func NotFound(resource string) *APIError {
	return New(http.StatusNotFound, resource+" não encontrado", nil)
}

func Conflict(message string) *APIError {
	return New(http.StatusConflict, message, nil)
}

func Internal(err error) *APIError {
	return New(http.StatusInternalServerError, "Erro interno do servidor", err)
}
