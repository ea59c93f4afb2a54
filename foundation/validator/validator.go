package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	errs "github.com/vortex-fintech/fieldnorm/foundation/errors"
	"github.com/vortex-fintech/fieldnorm/foundation/geo"
	"github.com/vortex-fintech/fieldnorm/foundation/pathutil"
)

var v *validator.Validate

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())
	mustRegister("iso2", func(fl validator.FieldLevel) bool {
		return geo.IsValidISO2(fl.Field().String())
	})
	mustRegister("fieldpath", func(fl validator.FieldLevel) bool {
		_, ok := pathutil.Split(fl.Field().String())
		return ok
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func Instance() *validator.Validate {
	return v
}

// Validate returns field path to reason for every failed rule, or nil.
func Validate(i any) map[string]string {
	if err := v.Struct(i); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) {
			out := make(map[string]string, len(ves))
			for _, e := range ves {
				out[fieldPath(e)] = mapTagToCode(e.Tag())
			}
			return out
		}
		return map[string]string{"_error": "validation_failed"}
	}
	return nil
}

// Check validates i and returns an errs.ErrorResponse carrying one violation per failed rule.
func Check(i any) error {
	err := v.Struct(i)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		return errs.FromPlayground(ves, tagMap)
	}
	return errs.Validation(nil).WithDetail("cause", err.Error())
}

func fieldPath(e validator.FieldError) string {
	ns := e.StructNamespace()
	if i := strings.Index(ns, "."); i >= 0 && i+1 < len(ns) {
		return ns[i+1:]
	}
	return e.Field()
}
