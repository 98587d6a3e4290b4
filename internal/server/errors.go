package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rgehrsitz/billimpact/internal/session"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

// ErrBadRequest indicates a body that could not be decoded
type ErrBadRequest struct {
	Err error
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Err)
}

func (e *ErrBadRequest) Unwrap() error {
	return e.Err
}

// ErrUnknownStep indicates a wizard step name the API does not know
type ErrUnknownStep struct {
	Step string
}

func (e *ErrUnknownStep) Error() string {
	return fmt.Sprintf("unknown step: %s", e.Step)
}

// ErrNoResults indicates a session that has not been calculated yet
var ErrNoResults = errors.New("results not available")

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation *ErrValidation
		badRequest *ErrBadRequest
		unknown    *ErrUnknownStep
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.As(err, &unknown),
		errors.Is(err, session.ErrNotFound),
		errors.Is(err, ErrNoResults):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
