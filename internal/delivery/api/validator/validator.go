// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"zumap/internal/domain/entity"
	"zumap/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Validator implements echo.Validator
type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports JSON field names and knows the
// "content_type" rule.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
		}
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})
	_ = v.RegisterValidation("content_type", func(fl validator.FieldLevel) bool {
		return entity.ContentType(strings.ToLower(fl.Field().String())).IsKnown()
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator
func (v *Validator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}

// Details lists the fields rejected by a Validate error, or nil for any other error.
func Details(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return details
}
