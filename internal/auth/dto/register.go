package dto

import (
	"strings"

	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Normalize trims whitespace and lowercases the email, which is the
// case-insensitive uniqueness key.
func (in *RegisterInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in RegisterInput) Validate() error {
	var errs apperrors.FieldErrors
	if in.Name == "" {
		errs = errs.Add("name", "name is required")
	}
	if in.Email == "" {
		errs = errs.Add("email", "email is required")
	} else if !strings.Contains(in.Email, "@") {
		errs = errs.Add("email", "invalid email")
	}
	if len(in.Password) < 6 {
		errs = errs.Add("password", "password must be at least 6 characters")
	}
	return errs.OrNil()
}
