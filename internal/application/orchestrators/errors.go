package orchestrators

import "errors"

// Shared orchestrator errors. Handlers map ErrValidation to a 400 and
// ErrInvalidCredentials to an inline login-form message; anything else
// is a persistence failure reported as a generic 500.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("identifiant ou mot de passe incorrect")
)
