package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrRegistrationNotFound is returned when no registration matches.
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrCommitteeNotFound is returned when a committee is not found.
	ErrCommitteeNotFound = errors.New("committee not found")
	// ErrInvalidPreferences is returned when committee preferences are malformed.
	ErrInvalidPreferences = errors.New("invalid committee preferences")
	// ErrCodeSpaceExhausted is returned when code generation keeps colliding.
	ErrCodeSpaceExhausted = errors.New("could not generate a unique registration code")
	// ErrForbidden is returned when the caller's role does not allow the operation.
	ErrForbidden = errors.New("operation not allowed for this role")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrRegistrationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REGISTRATION_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrCommitteeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMITTEE_NOT_FOUND")
	case errors.Is(err, ErrInvalidPreferences):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PREFERENCES")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
