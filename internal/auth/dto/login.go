package dto

import (
	"strings"

	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *LoginInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in LoginInput) Validate() error {
	var errs apperrors.FieldErrors
	if in.Email == "" {
		errs = errs.Add("email", "email is required")
	}
	if in.Password == "" {
		errs = errs.Add("password", "password is required")
	}
	return errs.OrNil()
}
