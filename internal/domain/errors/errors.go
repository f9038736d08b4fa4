// Package errors defines the storefront's application error taxonomy.
// Remote failures are mapped into AppError values with a best-effort message
// extracted from the backend's error body; handlers never see raw HTTP
// errors from the commerce platform.
package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying extra detail text.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrSessionRequired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_REQUIRED",
		"You must be signed in to do that",
		"",
	)

	// Cart-related errors
	ErrCartUnavailable = NewBaseError(
		http.StatusBadGateway,
		"CART_UNAVAILABLE",
		"The cart service is currently unavailable",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Quantity must be at least 1",
		"",
	)

	ErrItemBusy = NewBaseError(
		http.StatusConflict,
		"ITEM_BUSY",
		"A change to this item is already in progress",
		"",
	)

	ErrNonceUnavailable = NewBaseError(
		http.StatusBadGateway,
		"NONCE_UNAVAILABLE",
		"Could not obtain a cart security token",
		"",
	)

	// Checkout-related errors
	ErrMissingRequiredFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_REQUIRED_FIELDS",
		"Please fill all required billing fields",
		"",
	)

	ErrCheckoutFailed = NewBaseError(
		http.StatusBadGateway,
		"CHECKOUT_FAILED",
		"Checkout failed. Please try again",
		"",
	)

	ErrPaymentVerification = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_VERIFICATION_FAILED",
		"Payment verification failed. Please contact support",
		"",
	)

	ErrInvalidCheckoutState = NewBaseError(
		http.StatusConflict,
		"INVALID_CHECKOUT_STATE",
		"This order is not awaiting payment",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// RemoteError wraps a failure reported by one of the remote backends,
// implementing the AppError interface. The message is extracted from the
// error body when the backend provides one.
type RemoteError struct {
	status  int
	code    string
	message string
	err     error
}

// NewRemoteError creates an error for a non-2xx backend response. When the
// backend supplied no message, a generic one is used.
func NewRemoteError(status int, code, message string, err error) AppError {
	if message == "" {
		message = http.StatusText(status)
	}
	if code == "" {
		code = "REMOTE_ERROR"
	}

	return &RemoteError{
		status:  status,
		code:    code,
		message: message,
		err:     err,
	}
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	return e.message
}

// Unwrap exposes the underlying transport error, if any.
func (e *RemoteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the upstream HTTP status code.
func (e *RemoteError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code
func (e *RemoteError) ErrorCode() string {
	return e.code
}

// Message returns the user-friendly error message
func (e *RemoteError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *RemoteError) Details() string {
	if e.err != nil {
		return e.err.Error()
	}

	return ""
}

// Response is the unified envelope handlers and middleware emit.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code and detail text.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// IsRemoteStatus reports whether err is a RemoteError with the given status.
func IsRemoteStatus(err error, status int) bool {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.status == status
	}

	return false
}
