// Package validator wraps go-playground struct validation, reporting
// failures as a field-to-rule map suitable for API error payloads.
package validator

import (
	"errors"

	validatorlib "github.com/go-playground/validator/v10"
)

var validate = validatorlib.New()

// Validate checks v against its validate tags. Nil means v passed.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var verrs validatorlib.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	}
	return fields
}
