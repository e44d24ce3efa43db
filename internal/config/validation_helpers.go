package config

import (
	"github.com/alexisbeaulieu97/pagedots/internal/validation"
	apperrors "github.com/alexisbeaulieu97/pagedots/pkg/errors"
)

// convertValidationError normalizes validator errors into pagedots validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if fe, ok := validation.FirstFieldError(err); ok {
		return apperrors.NewValidationError(validation.FieldPath(fe), validation.Describe(fe), err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}
