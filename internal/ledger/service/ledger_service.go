package service

//go:generate mockgen -destination=../../mocks/mock_transaction_repository.go -package=mocks github.com/Royal-dudy99/SwiftBooks18/internal/ledger/domain TransactionRepository

import (
	"context"
	"time"

	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/domain"
	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/dto"
	"github.com/Royal-dudy99/SwiftBooks18/pkg/constant"
	"github.com/google/uuid"
)

type LedgerService struct {
	repo domain.TransactionRepository
}

func NewLedgerService(repo domain.TransactionRepository) *LedgerService {
	return &LedgerService{repo: repo}
}

func (s *LedgerService) Create(ctx context.Context, ownerID string, input dto.CreateTransactionInput) (*domain.Transaction, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	tx := &domain.Transaction{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Type:        domain.Type(input.Type),
		Amount:      input.Amount,
		Currency:    domain.Currency(input.Currency),
		Category:    input.Category,
		Description: input.Description,
		Date:        date,
		Account:     domain.Account(input.Account),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *LedgerService) Get(ctx context.Context, ownerID, id string) (*domain.Transaction, error) {
	return s.repo.GetByID(ctx, ownerID, id)
}

func (s *LedgerService) List(ctx context.Context, ownerID string, q dto.ListQuery) (*dto.TransactionList, error) {
	page := q.Page
	if page < 1 {
		page = constant.DefaultPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = constant.DefaultLimit
	}
	if limit > constant.MaxLimit {
		limit = constant.MaxLimit
	}

	filter := domain.Filter{
		Type:      domain.Type(q.Type),
		Category:  q.Category,
		StartDate: q.StartDate,
		EndDate:   endOfDay(q.EndDate),
		Offset:    (page - 1) * limit,
		Limit:     limit,
	}

	list, total, err := s.repo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	totalPages := (total + limit - 1) / limit
	return &dto.TransactionList{
		Transactions: list,
		Total:        total,
		TotalPages:   totalPages,
		CurrentPage:  page,
	}, nil
}

// Update applies patch semantics: only the fields present in the input
// change, the merged record is re-validated and UpdatedAt refreshed.
// OwnerID never changes.
func (s *LedgerService) Update(ctx context.Context, ownerID, id string, input dto.UpdateTransactionInput) (*domain.Transaction, error) {
	tx, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	input.Apply(tx)
	if err := validateMerged(tx); err != nil {
		return nil, err
	}

	tx.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *LedgerService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}

func validateMerged(tx *domain.Transaction) error {
	in := dto.CreateTransactionInput{
		Type:     string(tx.Type),
		Amount:   tx.Amount,
		Currency: string(tx.Currency),
		Category: tx.Category,
		Account:  string(tx.Account),
	}
	return in.Validate()
}

// endOfDay widens a date-only end bound to the end of that day so the
// range stays inclusive when clients send "2025-02-01".
func endOfDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		e := t.Add(24*time.Hour - time.Nanosecond)
		return &e
	}
	return t
}
