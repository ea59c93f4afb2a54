package errors

import (
	"errors"
	"fmt"
	"strings"

	play "github.com/go-playground/validator/v10"
)

// DefaultTagReasons maps validator tags used by config structs to violation reasons.
var DefaultTagReasons = map[string]string{
	"required":  "required",
	"oneof":     "unsupported_value",
	"iso2":      "invalid_country",
	"fieldpath": "invalid_path",
	"dive":      "invalid",
	"gte":       "too_small",
	"lte":       "too_large",
}

// FromPlayground turns validator errors into one violation per failed rule.
// Field paths drop the root type name, so "Config.Email.OutputMode" becomes
// "Email.OutputMode".
func FromPlayground(err play.ValidationErrors, tagToReason map[string]string) ErrorResponse {
	violations := make([]FieldViolation, 0, len(err))
	for _, fe := range err {
		reason := tagToReason[fe.Tag()]
		if reason == "" {
			reason = "invalid"
		}

		field := fe.StructNamespace()
		if _, rest, ok := strings.Cut(field, "."); ok && rest != "" {
			field = rest
		} else {
			field = fe.Field()
		}

		violations = append(violations, FieldViolation{
			Field:       field,
			Reason:      reason,
			Description: fmt.Sprintf("%s validation failed (%s)", field, fe.Tag()),
		})
	}
	return Validation(violations)
}

func asPlayground(err error) (play.ValidationErrors, bool) {
	var ves play.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return ves, true
	}
	return nil, false
}
