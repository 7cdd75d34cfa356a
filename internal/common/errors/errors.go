// Package errors provides standardized error handling for the chat service.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigMissing    ErrorCode = "CONFIG_MISSING"
	ErrCodeModelUnavailable ErrorCode = "MODEL_UNAVAILABLE"

	ErrCodeModelInvocationFailed ErrorCode = "MODEL_INVOCATION_FAILED"
	ErrCodeModelTimeout          ErrorCode = "MODEL_TIMEOUT"
	ErrCodeModelResponseInvalid  ErrorCode = "MODEL_RESPONSE_INVALID"

	ErrCodeRequestValidationFailed ErrorCode = "REQUEST_VALIDATION_FAILED"
	ErrCodeToolEncodingFailed      ErrorCode = "TOOL_ENCODING_FAILED"
	ErrCodeToolUnknown             ErrorCode = "TOOL_UNKNOWN"

	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeInvalidTurnRole ErrorCode = "INVALID_TURN_ROLE"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewConfigInvalidError creates a non-retryable configuration error.
func NewConfigInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigInvalid,
		Message:   "Invalid service configuration",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigMissingError creates a non-retryable missing-configuration error.
func NewConfigMissingError(key string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigMissing,
		Message:   "Required configuration is missing",
		Details:   fmt.Sprintf("key: %s", key),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelUnavailableError creates a non-retryable error for a chat client
// that was never initialized (missing credentials or endpoint).
func NewModelUnavailableError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelUnavailable,
		Message:   "Model client is not initialized",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelInvocationFailedError creates a retryable remote invocation error.
func NewModelInvocationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelInvocationFailed,
		Message:   "Chat completion API error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelTimeoutError creates a retryable invocation timeout error.
func NewModelTimeoutError(timeout time.Duration) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelTimeout,
		Message:   "Chat completion timed out",
		Details:   fmt.Sprintf("call exceeded %s timeout", timeout),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelResponseInvalidError creates a non-retryable malformed-response error.
func NewModelResponseInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelResponseInvalid,
		Message:   "Chat completion response is malformed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRequestValidationError creates a non-retryable request validation error.
func NewRequestValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestValidationFailed,
		Message:   "Chat request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewToolEncodingError creates a non-retryable tool record encoding error.
func NewToolEncodingError(tool string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeToolEncodingFailed,
		Message:   "Tool record encoding failed",
		Details:   fmt.Sprintf("tool: %s, error: %s", tool, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewToolUnknownError creates a non-retryable unknown-tool error.
func NewToolUnknownError(tool string) *StandardError {
	return &StandardError{
		Code:      ErrCodeToolUnknown,
		Message:   "Unknown tool",
		Details:   fmt.Sprintf("tool: %s", tool),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError creates a non-retryable session lookup error.
func NewSessionNotFoundError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "Session not found",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidTurnRoleError creates a non-retryable turn role error.
func NewInvalidTurnRoleError(role string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidTurnRole,
		Message:   "Turn role is empty or unknown",
		Details:   fmt.Sprintf("role: %q", role),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected internal error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// AsStandard extracts a StandardError from an error chain.
func AsStandard(err error) (*StandardError, bool) {
	var se *StandardError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// Normalize returns the StandardError in the chain, or wraps err as an
// internal error when there is none.
func Normalize(err error) *StandardError {
	if se, ok := AsStandard(err); ok {
		return se
	}
	return NewInternalError(err)
}

// IsCode checks whether the error chain carries the given code.
func IsCode(err error, code ErrorCode) bool {
	se, ok := AsStandard(err)
	return ok && se.Code == code
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	se, ok := AsStandard(err)
	return ok && se.Retryable
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "CONFIG"):
		return "CONFIG"
	case strings.Contains(codeStr, "MODEL"):
		return "MODEL"
	case strings.Contains(codeStr, "TOOL"):
		return "TOOL"
	case strings.Contains(codeStr, "SESSION") || strings.Contains(codeStr, "TURN"):
		return "SESSION"
	case strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
