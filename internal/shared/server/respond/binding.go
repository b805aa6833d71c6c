package respond

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"justicehub-backend/internal/shared/apperr"
)

// BindingError converts a gin binding failure into a validation error with a
// readable message.
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.Validation("Invalid request body")
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return apperr.Validationf("Please provide %s", field)
	case "email":
		return apperr.Validation("Please enter a valid email address")
	case "min":
		return apperr.Validationf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return apperr.Validationf("%s cannot exceed %s characters", field, fe.Param())
	case "oneof":
		return apperr.Validationf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return apperr.Validation(fmt.Sprintf("Invalid value for %s", field))
	}
}
