package domain

import (
	"context"
	"time"
)

// UserRepository is the credential store. GetByEmail and GetByID return
// (nil, nil) when no user matches.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	Save(ctx context.Context, user *User) error
}

// ResetTokenStore holds pending password-reset tokens keyed by their
// SHA-256. Consume atomically removes the record and returns the owning
// user id; of any number of concurrent consumers of the same token,
// exactly one succeeds. Expired records are never returned.
type ResetTokenStore interface {
	Store(ctx context.Context, tokenHash, userID string, expiresAt time.Time) error
	Consume(ctx context.Context, tokenHash string) (string, error)
}

// Mailer delivers the password-reset link. Implementations are external
// collaborators; the auth service treats failures as best-effort.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}

// PartitionInitializer creates an empty ledger partition for a freshly
// registered user without coupling auth to a concrete ledger store.
type PartitionInitializer interface {
	InitOwner(ctx context.Context, ownerID string) error
}
