package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "INVALID_TOKEN"
	Kind    Kind   `json:"kind"`              // Error classification, e.g., "invalid_token"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// FromAppError builds the wire representation of an application error.
func FromAppError(err AppError) *ErrorInfo {
	return &ErrorInfo{
		Code:    err.ErrorCode(),
		Kind:    err.Kind(),
		Details: err.Details(),
	}
}
