// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	// ErrValidationFailed is the kind of every input validation error.
	// Callers match it with errors.Is; the concrete error is a [FieldErrors].
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnsupportedType is returned for values that cannot be validated
	// (nil, non-struct). It signals a programming error, not bad input.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// FieldError describes a single failed rule.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string
	// Rule is the failed validation tag (e.g. "required", "email").
	Rule string
	// Message is a human readable description, e.g. "email must be a valid email".
	Message string
}

// FieldErrors is the list of failed rules for one input value.
// It unwraps to [ErrValidationFailed].
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Messages(), "; ")
}

func (e FieldErrors) Unwrap() error {
	return ErrValidationFailed
}

// Messages returns the human readable message of every failed rule.
func (e FieldErrors) Messages() []string {
	messages := make([]string, 0, len(e))
	for _, fe := range e {
		messages = append(messages, fe.Message)
	}
	return messages
}
