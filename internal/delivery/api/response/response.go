// Package response writes the JSON envelopes returned by the account API.
package response

import (
	"net/http"

	deliverycontext "mdr/internal/delivery/context"
	domainerrors "mdr/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string            `json:"code"`              // Machine-readable error code, e.g., "INVALID_TOKEN"
	Kind    domainerrors.Kind `json:"kind,omitempty"`    // Error classification, e.g., "invalid_token"
	Message string            `json:"message"`           // Short human-readable reason
	Details any               `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// MessageData is the payload of operations that only report completion.
type MessageData struct {
	Message string `json:"message"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Message returns a 200 response carrying only a message.
func Message(c echo.Context, message string) error {
	return Success(c, http.StatusOK, MessageData{Message: message})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return write(c, statusCode, &ErrorInfo{
		Code:    errorCode,
		Message: message,
		Details: details,
	})
}

// AppError writes the envelope for an application error.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	info := domainerrors.FromAppError(appErr)

	var details any
	if info.Details != "" {
		details = info.Details
	}

	return write(c, appErr.HTTPCode(), &ErrorInfo{
		Code:    info.Code,
		Kind:    info.Kind,
		Message: appErr.Message(),
		Details: details,
	})
}

func write(c echo.Context, statusCode int, info *ErrorInfo) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		info.Details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: info,
		Meta:  meta(c),
	})
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
