package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required": "{field} is required",
	"uuid":     "{field} must be a valid id",
	"oneof":    "{field} must be one of {param}",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be at least {param}",
	"max":      "{field} must be at most {param}",
	"nefield":  "{field} must differ from {param}",
	"datetime": "{field} must match the format {param}",
	"money":    "{field} must have at most two decimal places",
	"alphanum": "{field} must contain only letters and digits",
	"empty":    "{field} must be empty",
}

// message renders every field violation of err, in struct order, separated by "; ".
func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))

	for _, fieldErr := range fieldErrs {
		tmpl, ok := templates[fieldErr.Tag()]
		if !ok {
			parts = append(parts, fieldErr.Error())

			continue
		}

		parts = append(parts, strings.NewReplacer("{field}", fieldErr.Field(), "{param}", fieldErr.Param()).Replace(tmpl))
	}

	return strings.Join(parts, "; ")
}
