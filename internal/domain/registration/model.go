package registration

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrEmptyEventID = errors.New("event reference cannot be empty")
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrInvalidEmail = errors.New("email must contain '@'")
)

// Registration links a public attendee to an Event. Phone is optional.
type Registration struct {
	ID        string
	EventID   string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// Validate checks if the Registration has valid data.
// PRE: Registration struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Registration) Validate() error {
	if strings.TrimSpace(r.EventID) == "" {
		return ErrEmptyEventID
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(r.Email) == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(r.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}
