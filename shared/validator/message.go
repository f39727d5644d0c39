package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param} characters",
		"min":         "{field} must be at least {param} characters",
		"email":       "{field} must be a valid email address",
		"person_name": "{field} contains invalid characters",
		"phone":       "{field} contains invalid characters",
		"dateonly":    "{field} must be a date in YYYY-MM-DD format",
	}
)

// fieldMessages collects every violation into a field name to message map, so
// the caller gets the complete error set in one pass.
func fieldMessages(err error) map[string]string {
	var valErrors val.ValidationErrors

	fields := map[string]string{}

	if !errors.As(err, &valErrors) {
		return fields
	}

	for _, valErr := range valErrors {
		field := valErr.Field()
		if field == "" {
			field = valErr.StructField()
		}

		if _, seen := fields[field]; seen {
			continue
		}

		errStr := messages[valErr.Tag()]
		if errStr == "" {
			errStr = valErr.Error()
		} else {
			errStr = strings.ReplaceAll(errStr, "{field}", field)
			errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())
		}

		fields[field] = errStr
	}

	return fields
}
