// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/supplyline/supplyline/internal/store"
)

// Sentinel errors for the domain layer.
var (
	ErrValidation = errors.New("validation failed")
	ErrBadRequest = errors.New("bad request")
)

// ValidationError carries a client-facing message and unwraps to ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap ties the error to ErrValidation.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalidf builds a ValidationError.
func Invalidf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondError maps domain errors to HTTP responses using RFC7807.
func RespondError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	switch status {
	case http.StatusNotFound:
		Problem(w, status, "Not Found", "resource not found")
	case http.StatusBadRequest:
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			Problem(w, status, "Validation Failed", ve.Message)
		case errors.Is(err, store.ErrInvalidID):
			Problem(w, status, "Invalid Identifier", "invalid id format")
		default:
			Problem(w, status, "Bad Request", err.Error())
		}
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
