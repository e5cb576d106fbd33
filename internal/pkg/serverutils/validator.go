// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"strings"

	"ai-character-admin-be/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest checks a request DTO's struct tags and converts
// violations into the shared ValidationError so the error middleware
// renders them field by field.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var errs apperrors.Collector
	for _, fe := range invalid {
		errs.Add(fieldName(fe), reasonFor(fe))
	}
	return errs.Err()
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace is Request.Field; drop the struct prefix and
	// report the lowercased JSON-ish name.
	parts := strings.SplitN(fe.StructNamespace(), ".", 2)
	name := fe.Field()
	if len(parts) == 2 {
		name = parts[1]
	}
	return toSnake(name)
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
