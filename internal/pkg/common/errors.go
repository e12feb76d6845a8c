package common

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the wire shape of an API error.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"` // only populated in debug mode
}

// CustomError carries an error code and HTTP status alongside the message.
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError creates a new custom error.
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError rejects a malformed MealPlanRequest before any
// candidate fetch happens.
type ValidationError struct {
	message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError creates a new validation error.
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError checks whether err is a validation error.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// InsufficientCandidatesError is fatal to a generation: a slot had no
// admissible recipe. It names the offending slot so the caller can build
// a precise message.
type InsufficientCandidatesError struct {
	Day        int
	MealNumber int
	MealType   MealType
}

// Error implements the error interface.
func (e *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("no candidate recipe satisfies day %d meal %d (%s)", e.Day, e.MealNumber, e.MealType)
}

// NewInsufficientCandidatesError creates the slot-fill failure for the
// given slot.
func NewInsufficientCandidatesError(day, mealNumber int, mealType MealType) error {
	return &InsufficientCandidatesError{
		Day:        day,
		MealNumber: mealNumber,
		MealType:   mealType,
	}
}

// IsInsufficientCandidates checks whether err is a slot-fill failure.
func IsInsufficientCandidates(err error) bool {
	_, ok := err.(*InsufficientCandidatesError)
	return ok
}

// Predefined error codes.
const (
	// client errors (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"   // 400
	ErrCodeNotFound         = "NOT_FOUND"         // 404
	ErrCodeRequestTimeout   = "REQUEST_TIMEOUT"   // 408
	ErrCodeUnprocessable    = "UNPROCESSABLE"     // 422
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS" // 429

	// server errors (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504
)

// Predefined errors.
var (
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "resource not found", http.StatusNotFound, nil)
	ErrRequestTimeout  = NewError(ErrCodeRequestTimeout, "request timed out", http.StatusRequestTimeout, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "too many requests", http.StatusTooManyRequests, nil)

	ErrInternalError      = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "service temporarily unavailable", http.StatusServiceUnavailable, nil)
	ErrGatewayTimeout     = NewError(ErrCodeGatewayTimeout, "gateway timeout", http.StatusGatewayTimeout, nil)

	// domain errors
	ErrProviderUnavailable = NewError("PROVIDER_UNAVAILABLE", "recipe candidate provider unavailable", http.StatusServiceUnavailable, nil)
	ErrCacheFull           = NewError("CACHE_FULL", "cache is full", http.StatusServiceUnavailable, nil)
	ErrCacheDisabled       = NewError("CACHE_DISABLED", "cache is disabled", http.StatusServiceUnavailable, nil)
	ErrCacheMiss           = NewError("CACHE_MISS", "cache miss", http.StatusNotFound, nil)
)
