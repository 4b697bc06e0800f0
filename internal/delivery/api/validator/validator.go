// Package validator plugs go-playground/validator into echo and maps its failures to domain errors.
package validator

import (
	"reflect"
	"strings"

	domainerrors "prestadores/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Rule maps a failed validation tag to a domain error. An empty Field matches any field.
type Rule struct {
	Field string
	Tag   string
	Err   *domainerrors.BaseError
}

// Translate turns a validation failure into the first matching rule's error, trying rules
// in order. Unmatched failures become ErrValidationFailed listing the offending fields.
func Translate(err error, rules ...Rule) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	for _, rule := range rules {
		for _, fe := range fieldErrs {
			if fe.Tag() != rule.Tag {
				continue
			}
			if rule.Field != "" && fe.Field() != rule.Field {
				continue
			}

			return rule.Err
		}
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
	}

	return domainerrors.ErrValidationFailed.WithDetails("invalid fields: " + strings.Join(fields, ", "))
}
