package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrVehicleNotFound is returned when a vehicle is not found.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrSessionNotFound is returned when a parking session is not found.
	ErrSessionNotFound = errors.New("parking session not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicatePlate is returned when the plate is already registered.
	ErrDuplicatePlate = errors.New("plate already registered")
	// ErrInvalidEmail is returned when the email fails validation.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrPasswordTooShort is returned when the password has fewer than 6 characters.
	ErrPasswordTooShort = errors.New("password must have at least 6 characters")
	// ErrInvalidPlate is returned when the plate does not match the expected format.
	ErrInvalidPlate = errors.New("invalid plate, expected format: ABC1D23")
	// ErrAlreadyParked is returned when the vehicle already has an open parking session.
	ErrAlreadyParked = errors.New("vehicle already parked")
	// ErrAlreadyExited is returned when the parking session was already closed.
	ErrAlreadyExited = errors.New("vehicle already exited")
	// ErrWrongPassword is returned when login credentials do not match.
	ErrWrongPassword = errors.New("wrong password")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Conflicts (duplicate keys
// and state-machine violations) map to 400, matching the documented API.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ACCOUNT_NOT_FOUND")
	case errors.Is(err, ErrVehicleNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "VEHICLE_NOT_FOUND")
	case errors.Is(err, ErrSessionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SESSION_NOT_FOUND")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrDuplicatePlate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_PLATE")
	case errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_EMAIL")
	case errors.Is(err, ErrPasswordTooShort):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PASSWORD_TOO_SHORT")
	case errors.Is(err, ErrInvalidPlate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PLATE")
	case errors.Is(err, ErrAlreadyParked):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_PARKED")
	case errors.Is(err, ErrAlreadyExited):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_EXITED")
	case errors.Is(err, ErrWrongPassword):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "WRONG_PASSWORD")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
