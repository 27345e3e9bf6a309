package common

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to clients. Stable, machine-readable values.
const (
	KindConfiguration = "configuration_error"
	KindUpstream      = "upstream_service_error"
	KindRender        = "render_error"
	KindValidation    = "validation_error"
)

// AppError represents application-specific errors
type AppError struct {
	Kind    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error constructors
func NewAppError(kind, message string, cause error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

func ConfigurationError(message string, cause error) *AppError {
	return NewAppError(KindConfiguration, message, cause)
}

func ValidationError(message string) *AppError {
	return NewAppError(KindValidation, message, nil)
}

func RenderError(message string, cause error) *AppError {
	return NewAppError(KindRender, message, cause)
}

// UpstreamError names the failed pipeline stage only. The cause stays
// attached for logging but must never reach a client response.
func UpstreamError(stage string, cause error) *AppError {
	return NewAppError(KindUpstream, stage+" failed", cause)
}

// KindOf extracts the error kind, or "" for foreign errors.
func KindOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
