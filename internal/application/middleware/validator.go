package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &RequestValidator{validate: validate}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// SetupValidator installs the request validator used by echo.Context.Validate.
func SetupValidator(e *echo.Echo) {
	e.Validator = NewRequestValidator()
}

// ValidationDetails maps each failing field (by JSON name) to the rule it broke.
// It returns nil when err carries no field errors.
func ValidationDetails(err error) map[string]string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil
	}

	details := make(map[string]string, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		details[fieldError.Field()] = fieldError.Tag()
	}
	return details
}
