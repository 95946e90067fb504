// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for the catalog.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing machine-readable ErrorCode and user-friendly messages.
  - Violations: Validation failures travel as an ordered list of [FieldError]
    values, each with its own status. The overall status is the most severe one.
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the canonical error type for the catalog API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "VALIDATION_ERROR").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds the ordered violations for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single violation reported by the validation pipeline.
type FieldError struct {
	// Field is the JSON field name that failed validation. Empty for
	// request-level violations (e.g. "Movie doesn't exist.").
	Field string `json:"field,omitempty"`
	// Code is the contract code, e.g. "MOVIE_CZECH_NAME_NULL".
	Code string `json:"code"`
	// Message is the fixed human-readable message bound to Code.
	Message string `json:"message"`
	// HTTPStatus is the status bound to Code.
	HTTPStatus int `json:"-"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// HasCode reports whether any detail of e carries the given code.
func (e *AppError) HasCode(code string) bool {
	if e == nil {
		return false
	}
	for _, detail := range e.Details {
		if detail.Code == code {
			return true
		}
	}
	return false
}

// Codes returns the detail codes in reporting order.
func (e *AppError) Codes() []string {
	if e == nil {
		return nil
	}
	codes := make([]string, 0, len(e.Details))
	for _, detail := range e.Details {
		codes = append(codes, detail.Code)
	}
	return codes
}

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Movie") // Returns "Movie not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Conflict creates a 422 [AppError] for uniqueness or concurrent-write violations.
//
// Conflicts are structurally valid requests the current state cannot accept,
// so they share the UNPROCESSABLE_ENTITY class with other semantic failures.
func Conflict(code, msg string) *AppError {
	return &AppError{
		Code:       code,
		Message:    msg,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// BadRequest creates a 400 [AppError] for malformed input shape.
func BadRequest(msg string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// ValidationFailed creates a VALIDATION_ERROR [AppError] carrying every violation.
//
// The overall status is the most severe status among the details, see [Severest].
func ValidationFailed(details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Validation failed",
		HTTPStatus: Severest(details),
		Details:    details,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       "RATE_LIMITED",
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// ServiceUnavailable creates a 503 [AppError].
func ServiceUnavailable(msg string) *AppError {
	return &AppError{
		Code:       "SERVICE_UNAVAILABLE",
		Message:    msg,
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

// # Severity

// severity ranks the statuses a violation may carry. Higher wins.
func severity(status int) int {
	switch status {
	case http.StatusNotFound:
		return 3
	case http.StatusUnprocessableEntity:
		return 2
	case http.StatusBadRequest:
		return 1
	default:
		return 0
	}
}

// Severest returns the overall status for a set of violations:
// NOT_FOUND over UNPROCESSABLE_ENTITY over BAD_REQUEST.
//
// An empty set yields 400.
func Severest(details []FieldError) int {
	status := http.StatusBadRequest
	for _, detail := range details {
		if severity(detail.HTTPStatus) > severity(status) {
			status = detail.HTTPStatus
		}
	}
	return status
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
