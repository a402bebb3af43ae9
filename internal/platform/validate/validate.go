// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used in the service layer, before any repository call, so
// that a rejected submission never touches the database.
package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
)

var (
	// phoneRegex accepts digits with the usual separators, e.g. "326-123-5000" or "+1 (415) 000-1234".
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{6,}[0-9]$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// Validator is not safe for concurrent use. A new instance must be created
// for every operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// URL fails if a non-empty value is not an absolute http(s) URL.
//
// Empty values pass; chain [Validator.Required] when the field is mandatory.
func (v *Validator) URL(field, value string) *Validator {
	if value == "" {
		return v
	}

	parsed, err := url.ParseRequestURI(value)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		v.add(field, "Must be a valid URL")
	}
	return v
}

// Phone fails if a non-empty value does not look like a phone number.
func (v *Validator) Phone(field, value string) *Validator {
	if value == "" {
		return v
	}

	if !phoneRegex.MatchString(value) {
		v.add(field, "Must be a valid phone number")
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	if slices.Contains(allowed, value) {
		return v
	}
	v.add(field, "Not a valid choice")
	return v
}

// PositiveID fails if the value is not a usable primary key.
func (v *Validator) PositiveID(field string, value int) *Validator {
	if value <= 0 {
		v.add(field, "This field is required")
	}
	return v
}

// NotEmpty fails if the slice has no elements.
func (v *Validator) NotEmpty(field string, count int) *Validator {
	if count == 0 {
		v.add(field, "This field is required")
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("genres", len(missing) > 0, "Unknown genre")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// FieldError is a shortcut to create a single-field validation error.
func FieldError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
