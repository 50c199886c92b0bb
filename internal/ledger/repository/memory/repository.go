// Package memory implements the ledger store as per-owner in-process
// partitions. Writes within one partition serialize on the partition
// lock; different owners never contend.
package memory

import (
	"context"
	"sort"
	"sync"

	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/domain"
)

type partition struct {
	mu      sync.RWMutex
	records []domain.Transaction
}

type TransactionRepository struct {
	mu         sync.RWMutex
	partitions map[string]*partition
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{partitions: make(map[string]*partition)}
}

func (r *TransactionRepository) InitOwner(_ context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.partitions[ownerID]; !ok {
		r.partitions[ownerID] = &partition{}
	}
	return nil
}

// part returns the owner's partition, creating it on first touch so a
// store populated outside Register (tests, imports) still works.
func (r *TransactionRepository) part(ownerID string) *partition {
	r.mu.RLock()
	p, ok := r.partitions[ownerID]
	r.mu.RUnlock()
	if ok {
		return p
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok = r.partitions[ownerID]; !ok {
		p = &partition{}
		r.partitions[ownerID] = p
	}
	return p
}

func (r *TransactionRepository) Create(_ context.Context, tx *domain.Transaction) error {
	p := r.part(tx.OwnerID)
	p.mu.Lock()
	defer p.mu.Unlock()

	p.records = append(p.records, *tx)
	return nil
}

func (r *TransactionRepository) GetByID(_ context.Context, ownerID, id string) (*domain.Transaction, error) {
	p := r.part(ownerID)
	p.mu.RLock()
	defer p.mu.RUnlock()

	for i := range p.records {
		if p.records[i].ID == id {
			c := p.records[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *TransactionRepository) List(_ context.Context, ownerID string, f domain.Filter) ([]domain.Transaction, int, error) {
	p := r.part(ownerID)
	p.mu.RLock()

	matched := make([]domain.Transaction, 0, len(p.records))
	for _, tx := range p.records {
		if matches(tx, f) {
			matched = append(matched, tx)
		}
	}
	p.mu.RUnlock()

	// Most-recent-first for display; the stable sort keeps insertion
	// order among records sharing a date.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	total := len(matched)
	if f.Offset > 0 {
		if f.Offset >= total {
			return []domain.Transaction{}, total, nil
		}
		matched = matched[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

func (r *TransactionRepository) Update(_ context.Context, tx *domain.Transaction) error {
	p := r.part(tx.OwnerID)
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.records {
		if p.records[i].ID == tx.ID {
			p.records[i] = *tx
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *TransactionRepository) Delete(_ context.Context, ownerID, id string) error {
	p := r.part(ownerID)
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.records {
		if p.records[i].ID == id {
			p.records = append(p.records[:i], p.records[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func matches(tx domain.Transaction, f domain.Filter) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.Category != "" && tx.Category != f.Category {
		return false
	}
	if f.StartDate != nil && tx.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && tx.Date.After(*f.EndDate) {
		return false
	}
	return true
}
