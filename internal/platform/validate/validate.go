// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate checks decoded request bodies before they reach a service.
//
// Rules are chained on a [Validator]; every failing rule is kept, so one 400
// response lists all rejected fields at once.
package validate

import (
	"net/mail"
	"regexp"
	"slices"
	"strings"

	"github.com/taibuivan/memberauth/internal/platform/apperr"
)

var (
	// PhonePattern accepts mobile numbers such as 010-1234-5678 or 010-123-4567.
	PhonePattern = regexp.MustCompile(`^010-\d{3,4}-\d{4}$`)

	// ErrInvalidJSON is the 400 for a body that does not decode.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

const (
	reasonRequired = "This field is required"
	reasonBlank    = "Must not be blank"
	reasonEmail    = "Must be a valid email address"
)

// Validator accumulates failures for one request. It is not safe for concurrent use.
type Validator struct {
	failures []apperr.FieldError
}

func (v *Validator) check(ok bool, field, reason string) *Validator {
	if !ok {
		v.failures = append(v.failures, apperr.FieldError{Field: field, Reason: reason})
	}
	return v
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// Required rejects empty or whitespace-only values.
func (v *Validator) Required(field, value string) *Validator {
	return v.check(!blank(value), field, reasonRequired)
}

// NotSpace rejects a value that was sent but is blank. Absent (nil) fields pass,
// which is what partial updates need.
func (v *Validator) NotSpace(field string, value *string) *Validator {
	return v.check(value == nil || !blank(*value), field, reasonBlank)
}

// Email accepts a bare address only; "Name <a@b>" forms are rejected.
func (v *Validator) Email(field, value string) *Validator {
	address, err := mail.ParseAddress(value)
	return v.check(err == nil && address.Address == value, field, reasonEmail)
}

func (v *Validator) Pattern(field, value string, pattern *regexp.Regexp, reason string) *Validator {
	return v.check(pattern.MatchString(value), field, reason)
}

func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	return v.check(slices.Contains(allowed, value), field, "Must be one of: "+strings.Join(allowed, ", "))
}

// HasErrors reports whether any rule has failed so far.
func (v *Validator) HasErrors() bool { return len(v.failures) > 0 }

// Err returns nil when every rule passed, otherwise a VALIDATION_ERROR
// carrying the failures in the order they were checked.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.failures...)
}
