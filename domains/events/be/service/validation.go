package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateEvent checks the merged record before any identity field is derived.
func validateEvent(v *validator.Validate, event Event) error {
	err := v.Struct(event)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := FieldErrors{}
	for _, fe := range validationErrs {
		fields.add(fieldName(fe), describe(fe))
	}
	return &ValidationError{Fields: fields}
}

// fieldName strips the struct prefix and any slice index, so "Event.agenda[2]" reports as "agenda".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	if idx := strings.Index(ns, "["); idx >= 0 {
		ns = ns[:idx]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	name := fieldName(fe)
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at least one item", name)
		}
		return fmt.Sprintf("%s is required", name)
	case "min":
		return fmt.Sprintf("%s must have at least one item", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL", name)
	default:
		return fmt.Sprintf("%s failed %s validation", name, fe.Tag())
	}
}
