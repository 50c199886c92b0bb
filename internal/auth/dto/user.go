package dto

import (
	"time"

	"github.com/Royal-dudy99/SwiftBooks18/internal/auth/domain"
)

type UserOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is the payload of every endpoint that issues a session
// token (register, login, reset-password).
type AuthResponse struct {
	Token string     `json:"token"`
	User  UserOutput `json:"user"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
