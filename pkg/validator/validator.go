package validator

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
)

// User-facing validation messages.
const (
	ErrFieldRequired      = "Ce champ est obligatoire"
	ErrInvalidEmail       = "Adresse e-mail invalide"
	ErrFieldExceedsMaxLen = "Ce champ est trop long"
	ErrUnknownValidation  = "Champ invalide"
)

var global *validator.Validate

func init() {
	SetValidator(New())
}

// New builds a validator instance for form inputs.
func New() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// SetValidator replaces the process-wide validator instance.
func SetValidator(v *validator.Validate) {
	global = v
}

// Validator returns the process-wide validator instance.
func Validator() *validator.Validate {
	return global
}

// Validate checks a tagged struct and converts the first violation into
// a single localized message naming the offending field.
func Validate(ctx context.Context, structure any) error {
	return parseValidationErrors(global.StructCtx(ctx, structure))
}

func parseValidationErrors(err error) error {
	if err == nil {
		return nil
	}
	var vErrors validator.ValidationErrors
	if !errors.As(err, &vErrors) {
		// InvalidValidationError and friends: not a field violation,
		// surface as-is.
		return err
	}
	if len(vErrors) == 0 {
		return nil
	}
	ve := vErrors[0]
	var msg string
	switch ve.Tag() {
	case "required":
		msg = ErrFieldRequired
	case "email":
		msg = ErrInvalidEmail
	case "max":
		msg = ErrFieldExceedsMaxLen
	default:
		msg = ErrUnknownValidation
	}
	return errors.New(msg + ": " + ve.Field())
}
