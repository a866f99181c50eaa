package volunteer

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrEmptyPosition = errors.New("position cannot be empty")
)

// Volunteer is a publicly listed member of the association.
// UserID optionally links the volunteer to a login account.
type Volunteer struct {
	ID       string
	Name     string
	Position string
	Bio      string
	Photo    string
	UserID   string
}

// Validate checks if the Volunteer has valid data.
// PRE: Volunteer struct is populated
// POST: Returns nil if valid, error otherwise
func (v *Volunteer) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(v.Position) == "" {
		return ErrEmptyPosition
	}
	return nil
}
