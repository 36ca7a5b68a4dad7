package apperror

import (
	"errors"
	"net/http"
)

type AppError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// Validation reports missing or invalid form fields, keyed by field name
func Validation(fields map[string]string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Missing Information",
		Fields:  fields,
	}
}

// RequestFailed reports a failed call to the workflow API.
// message is what the user sees; err keeps the underlying cause.
func RequestFailed(message string, err error) *AppError {
	return New(http.StatusBadGateway, message, err)
}

// IsRequestFailed reports whether err is a workflow request failure
func IsRequestFailed(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusBadGateway
}

// IsValidation reports whether err carries field validation errors
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Fields != nil
}
