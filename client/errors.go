// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ClientError is implemented by every error returned from this package.
type ClientError interface {
	error

	// Code returns the HTTP status code behind the error, or 0 when no response was involved.
	Code() int

	// Message returns the error message without the wrapped cause.
	Message() string

	// IsRetryable reports whether repeating the same call later may succeed.
	IsRetryable() bool
}

var (
	_ ClientError = (*AuthenticationError)(nil)
	_ ClientError = (*RequestError)(nil)
	_ ClientError = (*TimeoutError)(nil)
	_ ClientError = (*RetryExhaustedError)(nil)
	_ ClientError = (*ProtocolError)(nil)
	_ ClientError = (*ValidationError)(nil)
	_ ClientError = (*ConfigurationError)(nil)
)

// AuthenticationError is returned when the agent rejects the credential (401 or 403).
// It is never retried.
type AuthenticationError struct {
	StatusCode int
	Attempts   int
	Body       string
}

// NewAuthenticationError creates a new authentication error.
func NewAuthenticationError(statusCode, attempts int, body string) *AuthenticationError {
	return &AuthenticationError{StatusCode: statusCode, Attempts: attempts, Body: body}
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: HTTP %d%s", e.StatusCode, bodySuffix(e.Body))
}

// Code returns the HTTP status code.
func (e *AuthenticationError) Code() int { return e.StatusCode }

// Message returns the error message.
func (e *AuthenticationError) Message() string { return "authentication failed" }

// IsRetryable returns false.
func (e *AuthenticationError) IsRetryable() bool { return false }

// RequestError is returned when the agent rejects the request itself: 400 for a malformed
// payload, 404 for a missing agent, or any other 4xx. It is never retried.
type RequestError struct {
	StatusCode int
	Attempts   int
	Body       string
}

// NewRequestError creates a new client request error.
func NewRequestError(statusCode, attempts int, body string) *RequestError {
	return &RequestError{StatusCode: statusCode, Attempts: attempts, Body: body}
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: HTTP %d%s", e.Message(), e.StatusCode, bodySuffix(e.Body))
}

// Code returns the HTTP status code.
func (e *RequestError) Code() int { return e.StatusCode }

// Message returns the error message.
func (e *RequestError) Message() string {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return "malformed request"
	case http.StatusNotFound:
		return "agent not found"
	default:
		return "request rejected"
	}
}

// IsRetryable returns false.
func (e *RequestError) IsRetryable() bool { return false }

// TimeoutError is returned when the agent answers 408 to the request and to its immediate retry.
type TimeoutError struct {
	Attempts int
}

// NewTimeoutError creates a new timeout error.
func NewTimeoutError(attempts int) *TimeoutError {
	return &TimeoutError{Attempts: attempts}
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out: HTTP %d after %d attempts", http.StatusRequestTimeout, e.Attempts)
}

// Code returns 408.
func (e *TimeoutError) Code() int { return http.StatusRequestTimeout }

// Message returns the error message.
func (e *TimeoutError) Message() string { return "request timed out" }

// IsRetryable returns true; the agent may accept the request later.
func (e *TimeoutError) IsRetryable() bool { return true }

// RetryExhaustedError is returned when every attempt allowed by the [RetryPolicy] failed with a
// 5xx status or a network-level error.
type RetryExhaustedError struct {
	Attempts int

	// StatusCode is the status of the last attempt, or 0 when it failed at the network level.
	StatusCode int

	// Err is the error of the last attempt.
	Err error
}

// NewRetryExhaustedError creates a new retry exhausted error.
func NewRetryExhaustedError(attempts, statusCode int, err error) *RetryExhaustedError {
	return &RetryExhaustedError{Attempts: attempts, StatusCode: statusCode, Err: err}
}

// Error implements the error interface.
func (e *RetryExhaustedError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("retries exhausted after %d attempts: last status HTTP %d: %v", e.Attempts, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("retries exhausted after %d attempts: %v", e.Attempts, e.Err)
}

// Code returns the last HTTP status code.
func (e *RetryExhaustedError) Code() int { return e.StatusCode }

// Message returns the error message.
func (e *RetryExhaustedError) Message() string { return "retries exhausted" }

// IsRetryable returns true.
func (e *RetryExhaustedError) IsRetryable() bool { return true }

// Unwrap returns the error of the last attempt.
func (e *RetryExhaustedError) Unwrap() error { return e.Err }

// ProtocolError is returned when a successful HTTP response does not carry a well-formed result.
type ProtocolError struct {
	StatusCode int
	Msg        string
	Err        error
}

// NewProtocolError creates a new protocol error.
func NewProtocolError(statusCode int, message string, err error) *ProtocolError {
	return &ProtocolError{StatusCode: statusCode, Msg: message, Err: err}
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("protocol error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("protocol error: %s", e.Msg)
}

// Code returns the HTTP status code.
func (e *ProtocolError) Code() int { return e.StatusCode }

// Message returns the error message.
func (e *ProtocolError) Message() string { return e.Msg }

// IsRetryable returns false.
func (e *ProtocolError) IsRetryable() bool { return false }

// Unwrap returns the underlying error.
func (e *ProtocolError) Unwrap() error { return e.Err }

// ValidationError is returned when the caller's input is invalid. No request is sent.
type ValidationError struct {
	Msg string
	Err error
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, err error) *ValidationError {
	return &ValidationError{Msg: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("validation error: %s", e.Msg)
}

// Code returns 0.
func (e *ValidationError) Code() int { return 0 }

// Message returns the error message.
func (e *ValidationError) Message() string { return e.Msg }

// IsRetryable returns false.
func (e *ValidationError) IsRetryable() bool { return false }

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error { return e.Err }

// ConfigurationError is returned when the client cannot be built from its configuration.
type ConfigurationError struct {
	Msg string
	Err error
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(message string, err error) *ConfigurationError {
	return &ConfigurationError{Msg: message, Err: err}
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("configuration error: %s", e.Msg)
}

// Code returns 0.
func (e *ConfigurationError) Code() int { return 0 }

// Message returns the error message.
func (e *ConfigurationError) Message() string { return e.Msg }

// IsRetryable returns false.
func (e *ConfigurationError) IsRetryable() bool { return false }

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// RPCError is a JSON-RPC style error object returned by the agent in place of a result.
type RPCError struct {
	// Code is the error code
	Code int `json:"code"`
	// Message is the error message
	Message string `json:"message"`
	// Data is optional additional information about the error
	Data any `json:"data,omitzero"`
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	if e.Data != nil {
		return fmt.Sprintf("rpc error: code = %d, message = %s, data = %v", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("rpc error: code = %d, message = %s", e.Code, e.Message)
}

// IsAuthenticationError reports whether err is an [*AuthenticationError].
func IsAuthenticationError(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

// IsRequestError reports whether err is a [*RequestError].
func IsRequestError(err error) bool {
	var target *RequestError
	return errors.As(err, &target)
}

// IsTimeoutError reports whether err is a [*TimeoutError].
func IsTimeoutError(err error) bool {
	var target *TimeoutError
	return errors.As(err, &target)
}

// IsRetryExhaustedError reports whether err is a [*RetryExhaustedError].
func IsRetryExhaustedError(err error) bool {
	var target *RetryExhaustedError
	return errors.As(err, &target)
}

// IsProtocolError reports whether err is a [*ProtocolError].
func IsProtocolError(err error) bool {
	var target *ProtocolError
	return errors.As(err, &target)
}

// IsValidationError reports whether err is a [*ValidationError].
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConfigurationError reports whether err is a [*ConfigurationError].
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// bodySuffix formats a response body snippet for an error message.
func bodySuffix(body string) string {
	if body == "" {
		return ""
	}
	return ": " + body
}
