package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"payment-admin/internal/entities"
)

// registerRules registers the tags used in the dashboard DTOs.
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", isNotBlank); err != nil {
		return err
	}
	if err := v.RegisterValidation("payment_status", isPaymentStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("user_role", isUserRole); err != nil {
		return err
	}
	if err := v.RegisterValidation("isodate", isISODate); err != nil {
		return err
	}
	return nil
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isPaymentStatus(fl validator.FieldLevel) bool {
	switch entities.PaymentStatus(fl.Field().String()) {
	case entities.PaymentPending, entities.PaymentSuccess, entities.PaymentFailed:
		return true
	}
	return false
}

func isUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case entities.RoleAdmin, entities.RoleAgent:
		return true
	}
	return false
}

// isISODate accepts YYYY-MM-DD, the format of the date inputs.
func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}
