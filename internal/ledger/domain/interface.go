package domain

import (
	"context"
	"time"
)

// Filter narrows a List call. Zero values mean "no constraint"; Limit 0
// returns the whole partition (analytics reads the full snapshot).
type Filter struct {
	Type      Type
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}

// TransactionRepository is the per-owner partitioned ledger store. Every
// operation that names a record id treats "owned by someone else" exactly
// like "does not exist" and reports ErrNotFound.
type TransactionRepository interface {
	InitOwner(ctx context.Context, ownerID string) error
	Create(ctx context.Context, tx *Transaction) error
	GetByID(ctx context.Context, ownerID, id string) (*Transaction, error)
	// List returns matching records most-recent-first plus the total
	// match count before Offset/Limit are applied.
	List(ctx context.Context, ownerID string, f Filter) ([]Transaction, int, error)
	Update(ctx context.Context, tx *Transaction) error
	Delete(ctx context.Context, ownerID, id string) error
}
