package errors

import (
	"net/http"

	"mdr/internal/errors"
)

// Kind classifies an error so callers can branch on it without comparing messages.
type Kind string

const (
	KindConflict            Kind = "conflict"
	KindNotFound            Kind = "not_found"
	KindInvalidToken        Kind = "invalid_token"
	KindValidation          Kind = "validation"
	KindForbidden           Kind = "forbidden"
	KindUnauthorized        Kind = "unauthorized"
	KindPersistenceFailure  Kind = "persistence_failure"
	KindNotificationFailure Kind = "notification_failure"
	KindInternal            Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
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

// Is matches predefined errors by code so that WithDetails copies still compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrUsernameInUse = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"USERNAME_IN_USE",
		"username in use",
		"",
	)

	ErrEmailInUse = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"EMAIL_IN_USE",
		"email in use",
		"",
	)

	ErrPatientProfileNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PATIENT_PROFILE_NOT_FOUND",
		"no matching patient profile",
		"",
	)

	ErrPatientProfileLinked = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"PATIENT_PROFILE_LINKED",
		"patient profile already has an account",
		"",
	)

	ErrPatientSelfRegistrationOnly = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PATIENT_SELF_REGISTRATION_ONLY",
		"patients must use self-registration",
		"",
	)

	ErrInvalidRole = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_ROLE",
		"unknown role",
		"",
	)

	// Token-related errors
	ErrInvalidToken = NewBaseError(
		KindInvalidToken,
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"invalid or expired token",
		"",
	)

	ErrTokenGenerationFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"TOKEN_GENERATION_FAILED",
		"failed to generate token",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid username or password",
		"",
	)

	ErrUnauthorized = NewBaseError(
		KindUnauthorized,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"password does not meet strength requirements",
		"",
	)

	ErrPasswordForbiddenWords = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PASSWORD_FORBIDDEN_WORDS",
		"password contains forbidden words or patterns",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Notification-related errors
	ErrNotificationFailed = NewBaseError(
		KindNotificationFailure,
		http.StatusBadGateway,
		"NOTIFICATION_FAILED",
		"notification could not be delivered",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error classification
func (e *DatabaseExecuteError) Kind() Kind {
	return KindPersistenceFailure
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// KindOf returns the classification of err. Errors that carry no AppError in
// their chain are reported as KindInternal; nil yields an empty Kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindInternal
}
