package exceptions

import (
	"errors"
	"fmt"
	"strings"

	"careconnect-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first field error produced by the
// validator into a message safe to show to clients.
func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldError := validationErrors[0]
	message, ok := constvars.CustomValidationErrorMessages[fieldError.Tag()]
	if !ok {
		return fmt.Sprintf("%s is invalid", toSnakeCase(fieldError.Field()))
	}
	if constvars.TagsWithParams[fieldError.Tag()] {
		message = fmt.Sprintf(message, fieldError.Param())
	}
	return fmt.Sprintf("%s %s", toSnakeCase(fieldError.Field()), message)
}

func toSnakeCase(field string) string {
	var builder strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				builder.WriteByte('_')
			}
			builder.WriteRune(r - 'A' + 'a')
		} else {
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
