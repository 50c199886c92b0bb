package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ResetToken is a single-use password-reset credential. Only the SHA-256
// of the raw token is ever stored; the raw value lives in the reset email
// and nowhere else.
type ResetToken struct {
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
