package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "payment-admin/pkg/errors"
)

// translate turns the first failing field into a user-facing input error.
func translate(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}
	fe := validationErrors[0]
	return &apperrors.InvalidInputError{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("Le champ %s est obligatoire.", fe.Field())
	case "email":
		return "L'adresse e-mail n'est pas valide."
	case "eqfield":
		return "La confirmation du mot de passe ne correspond pas."
	case "min":
		return fmt.Sprintf("Le champ %s doit contenir au moins %s caractères.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("Le champ %s ne doit pas dépasser %s caractères.", fe.Field(), fe.Param())
	case "payment_status":
		return "Statut de paiement inconnu."
	case "user_role":
		return "Rôle inconnu."
	case "isodate":
		return fmt.Sprintf("Le champ %s doit être une date AAAA-MM-JJ.", fe.Field())
	}
	return fmt.Sprintf("Le champ %s est invalide.", fe.Field())
}
