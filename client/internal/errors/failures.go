package errors

import "fmt"

// ConfigurationError reports missing or invalid credentials or options.
// It is raised while a request is being built, before any network call.
type ConfigurationError struct {
	Field  string
	Reason string
}

// NewConfigurationError builds a ConfigurationError for field.
func NewConfigurationError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s %s", e.Field, e.Reason)
}

// RemoteAPIError is returned for every response whose status is >= 400.
type RemoteAPIError struct {
	StatusCode int
	ErrorCode  int
	Message    string
	RequestID  string
}

func (e *RemoteAPIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote api: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("remote api: HTTP %d (error code %d): %s", e.StatusCode, e.ErrorCode, e.Message)
}

// DecodeError reports a success-status body that is not valid JSON.
type DecodeError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response (HTTP %d): %v", e.Operation, e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError reports a request that never produced an HTTP response.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s network error: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Category reports that network failures are worth retrying.
func (e *TransportError) Category() ErrorCategory { return Recoverable }
