// Package validator wraps go-playground/validator for the service layer:
// handlers validate transport bindings through gin, services re-check the
// domain structs they are about to persist.
package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate returns nil when v passes its struct tags, otherwise a map of
// field name to the tag that failed.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}
	return fields
}
