// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the explicit input validation step that runs
// between request decoding and the service layer.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldErrors: the list of failed rules, matched with
//     errors.Is(err, ErrValidationFailed).
//
// Validation rules are declared as `validate` struct tags on the request
// models and checked with github.com/go-playground/validator/v10. Field names
// in messages are the JSON names of the fields.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to the named struct fields.
	Validate(context.Context, any, ...string) error
}
