// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates request models by their `validate` tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a [Validator] backed by go-playground/validator.
// The returned value is safe for concurrent use.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &RequestValidator{validate: v}
}

// Validate implements [Validator]. fields, when given, are Go struct field
// names; only those fields are checked.
//
// Failed rules are returned as [FieldErrors]; values that are not structs
// yield [ErrUnsupportedType].
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if obj == nil {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, invalid.Error())
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("error validating %T: %w", obj, err)
	}

	result := make(FieldErrors, 0, len(validationErrors))
	for _, fe := range validationErrors {
		result = append(result, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}

	return result
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " should not be empty"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a URL address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// jsonFieldName reports fields under their JSON name so messages match the
// request body the client sent.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}
