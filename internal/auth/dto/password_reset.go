package dto

import (
	"strings"

	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
)

type ForgotPasswordInput struct {
	Email string `json:"email"`
}

func (in *ForgotPasswordInput) Normalize() {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in ForgotPasswordInput) Validate() error {
	var errs apperrors.FieldErrors
	if in.Email == "" {
		errs = errs.Add("email", "email is required")
	}
	return errs.OrNil()
}

type ResetPasswordInput struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (in ResetPasswordInput) Validate() error {
	var errs apperrors.FieldErrors
	if in.Token == "" {
		errs = errs.Add("token", "token is required")
	}
	if len(in.Password) < 6 {
		errs = errs.Add("password", "password must be at least 6 characters")
	}
	return errs.OrNil()
}
