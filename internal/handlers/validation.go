package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"marketplace-api/internal/apperr"
)

// bindingError traduce lo que reporta el validator de gin a la
// taxonomía de la API. Los campos requeridos ausentes se listan todos
// juntos; del resto se reporta el primero.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validation("invalid request body")
	}

	var missing []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, strings.ToLower(fe.Field()))
		}
	}
	if len(missing) > 0 {
		return apperr.Validation("missing required fields: %s", strings.Join(missing, ", "))
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "min":
		return apperr.Validation("%s must have at least %s characters", field, fe.Param())
	case "max":
		return apperr.Validation("%s must have at most %s characters", field, fe.Param())
	case "gte":
		return apperr.Validation("%s cannot be negative", field)
	case "oneof":
		return apperr.Validation("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "http_url":
		return apperr.Validation("%s must be a valid http/https URL", field)
	default:
		return apperr.Validation("%s is invalid", field)
	}
}
