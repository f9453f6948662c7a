package service

import (
	"errors"
	"strings"

	apperrors "assignment-admin-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validationFailed converts validator output into a ValidationError naming the first bad field
func validationFailed(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(strings.ToLower(fe.Field()), "failed on the '"+fe.Tag()+"' rule")
	}
	return apperrors.NewValidationError("", err.Error())
}
