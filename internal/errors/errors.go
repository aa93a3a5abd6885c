package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, preserving the code of
// an inner AppError
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	code := CodeInternalError
	var appErr *AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// IsCode reports whether err carries the given application code
func IsCode(err error, code string) bool {
	return GetCode(err) == code
}

// Error codes for the interview engine.
//
// The state-machine codes (NOT_IN_PROGRESS, ALREADY_ENDED,
// INVALID_ROLE) surface to callers as hard errors. The oracle,
// embedding and transcription codes never do: the engine recovers
// from them internally and they exist for logging and metadata only.
const (
	CodeNotInProgress        = "NOT_IN_PROGRESS"
	CodeAlreadyEnded         = "ALREADY_ENDED"
	CodeInvalidRole          = "INVALID_ROLE"
	CodeOracleUnavailable    = "ORACLE_UNAVAILABLE"
	CodeOracleError          = "ORACLE_ERROR"
	CodeEmbeddingUnavailable = "EMBEDDING_UNAVAILABLE"
	CodeEmbeddingError       = "EMBEDDING_ERROR"
	CodeTranscriptionError   = "TRANSCRIPTION_ERROR"
	CodeNotFound             = "NOT_FOUND"
	CodeDatabaseError        = "DATABASE_ERROR"
	CodeConfigInvalid        = "CONFIG_INVALID"
	CodeInvalidInput         = "INVALID_INPUT"
	CodeInternalError        = "INTERNAL_ERROR"
)

// Common error constructors

func NotInProgress() *AppError {
	return New(CodeNotInProgress, "no interview in progress")
}

func AlreadyEnded() *AppError {
	return New(CodeAlreadyEnded, "interview already ended")
}

func InvalidRole(role string) *AppError {
	return New(CodeInvalidRole, fmt.Sprintf("no questions available for role %q", role))
}

func OracleUnavailable(message string) *AppError {
	return New(CodeOracleUnavailable, message)
}

func OracleError(cause error) *AppError {
	return &AppError{
		Code:    CodeOracleError,
		Message: "scoring oracle failed",
		Cause:   cause,
	}
}

func EmbeddingUnavailable(message string) *AppError {
	return New(CodeEmbeddingUnavailable, message)
}

func EmbeddingError(cause error) *AppError {
	return &AppError{
		Code:    CodeEmbeddingError,
		Message: "embedding request failed",
		Cause:   cause,
	}
}

func TranscriptionError(cause error) *AppError {
	return &AppError{
		Code:    CodeTranscriptionError,
		Message: "transcription failed",
		Cause:   cause,
	}
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

func DatabaseError(cause error) *AppError {
	return &AppError{
		Code:    CodeDatabaseError,
		Message: "database operation failed",
		Cause:   cause,
	}
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}
