// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the error type shared by the member services, the
security pipeline and the response writer.

A service returns an [*AppError] when it knows how a failure should look to
the client. Anything else reaching [respond.Error] is treated as an internal
error and its text stays in the logs.

Architecture:

  - Code: machine-readable identifier, logged and never sent.
  - Message: client-safe text. Authentication and authorization failures use
    the bare HTTP status text so the body leaks nothing.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies an error category in logs.
type Code string

const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeConflict     Code = "CONFLICT"
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeRateLimited  Code = "RATE_LIMITED"
	CodeInternal     Code = "INTERNAL_ERROR"
)

// AppError carries an HTTP status alongside a client-safe message.
type AppError struct {
	Code       Code
	Message    string
	HTTPStatus int

	// Cause is kept for server-side logging only.
	Cause error

	// Details lists per-field failures of a VALIDATION_ERROR.
	Details []FieldError
}

// FieldError is one rejected request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func newError(status int, code Code, message string) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// Error returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap exposes Cause to [errors.Is] and [errors.As].
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause returns a copy of e that records cause for logging.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// # 4xx

// NotFound reports a missing resource, e.g. NotFound("Member") gives "Member not found".
func NotFound(resource string) *AppError {
	return newError(http.StatusNotFound, CodeNotFound, resource+" not found")
}

// Unauthorized is the single body used for every authentication failure.
func Unauthorized() *AppError {
	return newError(http.StatusUnauthorized, CodeUnauthorized, http.StatusText(http.StatusUnauthorized))
}

// Forbidden is the single body used for every authorization failure.
func Forbidden() *AppError {
	return newError(http.StatusForbidden, CodeForbidden, http.StatusText(http.StatusForbidden))
}

func Conflict(msg string) *AppError {
	return newError(http.StatusConflict, CodeConflict, msg)
}

// ValidationError is a 400 with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	e := newError(http.StatusBadRequest, CodeValidation, msg)
	e.Details = details
	return e
}

// RateLimited is a 429 that tells the client when to retry.
func RateLimited(retryAfterSeconds int) *AppError {
	return newError(http.StatusTooManyRequests, CodeRateLimited,
		fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds))
}

// # 5xx

// Internal hides cause behind a generic message.
func Internal(cause error) *AppError {
	e := newError(http.StatusInternalServerError, CodeInternal, "An unexpected error occurred")
	e.Cause = cause
	return e
}

// As returns the first [*AppError] in err's chain, or nil.
func As(err error) *AppError {
	var appError *AppError
	if errors.As(err, &appError) {
		return appError
	}
	return nil
}
