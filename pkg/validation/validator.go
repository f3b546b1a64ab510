package validation

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps go-playground/validator for echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return translate(err)
	}
	return nil
}

// New builds the validator with null-type support and the dashboard rules.
// The server must not start with a broken rule set, so registration errors panic.
func New() *CustomValidator {
	v := validator.New()

	registerJSONNames(v)
	registerNullTypes(v)

	if err := registerRules(v); err != nil {
		panic("validator rules registration failed: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
