package validator_test

import (
	"context"
	"strings"
	"testing"

	"assosite/pkg/validator"
)

type testInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Note  string `validate:"max=10"`
}

// TestValidate tests the form-input validation wrapper.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   testInput
		wantErr string
	}{
		{
			name:  "valid input",
			input: testInput{Name: "Marie", Email: "marie@asso.fr"},
		},
		{
			name:    "missing name",
			input:   testInput{Email: "marie@asso.fr"},
			wantErr: validator.ErrFieldRequired,
		},
		{
			name:    "missing email",
			input:   testInput{Name: "Marie"},
			wantErr: validator.ErrFieldRequired,
		},
		{
			name:    "malformed email",
			input:   testInput{Name: "Marie", Email: "not-an-email"},
			wantErr: validator.ErrInvalidEmail,
		},
		{
			name:    "note too long",
			input:   testInput{Name: "Marie", Email: "marie@asso.fr", Note: "much more than ten characters"},
			wantErr: validator.ErrFieldExceedsMaxLen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(context.Background(), tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.HasPrefix(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want prefix %q", err, tt.wantErr)
			}
		})
	}
}

// TestValidate_NonStructInput tests that infrastructure errors from the
// underlying library are surfaced rather than discarded.
func TestValidate_NonStructInput(t *testing.T) {
	if err := validator.Validate(context.Background(), "not a struct"); err == nil {
		t.Error("Validate() on a non-struct input should report an error")
	}
}
