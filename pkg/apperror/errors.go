package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Request (REQ) ----

// Validation returns a REQ_001 validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

// ---- Conversion (CONV) ----

func ErrUnknownCurrency(currency string) *AppError {
	return New("CONV_001", fmt.Sprintf("unknown currency %q", currency), http.StatusBadRequest)
}

func ErrInvalidAmountText() *AppError {
	return New("CONV_002", "amount must contain only digits and at most one decimal point", http.StatusBadRequest)
}

// ---- Rate source (RATE) ----
// These never reach widget users: the rate provider recovers them with the
// fallback rate. They exist so the source adapter can report what went wrong.

func ErrRateSourceUnavailable(err error) *AppError {
	return Wrap("RATE_001", "rate source unavailable", http.StatusBadGateway, err)
}

func ErrRateSourceRejected(message string) *AppError {
	return New("RATE_002", fmt.Sprintf("rate source rejected request: %s", message), http.StatusBadGateway)
}

// ---- Rate Limiting (LIM) ----

func ErrRateLimitExceeded() *AppError {
	return New("LIM_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
