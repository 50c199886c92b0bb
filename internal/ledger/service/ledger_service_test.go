package service_test

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/domain"
	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/dto"
	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/repository/memory"
	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger() (*service.LedgerService, *memory.TransactionRepository) {
	repo := memory.NewTransactionRepository()
	return service.NewLedgerService(repo), repo
}

func TestLedgerService_Create(t *testing.T) {
	s, _ := newLedger()
	ctx := context.Background()

	tx, err := s.Create(ctx, "owner-a", dto.CreateTransactionInput{
		Type:     "expense",
		Amount:   250,
		Category: "Food",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "owner-a", tx.OwnerID)
	// Defaults applied.
	assert.Equal(t, domain.CurrencyINR, tx.Currency)
	assert.Equal(t, domain.AccountCash, tx.Account)
	assert.False(t, tx.Date.IsZero())
	assert.False(t, tx.CreatedAt.IsZero())
	assert.Equal(t, tx.CreatedAt, tx.UpdatedAt)
}

func TestLedgerService_Create_AmountBoundary(t *testing.T) {
	s, _ := newLedger()
	ctx := context.Background()

	tests := []struct {
		name    string
		amount  float64
		wantErr bool
	}{
		{"zero rejected", 0, true},
		{"negative rejected", -5, true},
		{"smallest positive accepted", 0.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(ctx, "owner-a", dto.CreateTransactionInput{
				Type:     "expense",
				Amount:   tt.amount,
				Category: "Food",
			})
			if tt.wantErr {
				var fieldErrs apperrors.FieldErrors
				assert.ErrorAs(t, err, &fieldErrs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLedgerService_Create_Validation(t *testing.T) {
	s, _ := newLedger()
	ctx := context.Background()

	tests := []struct {
		name  string
		input dto.CreateTransactionInput
		field string
	}{
		{"bad type", dto.CreateTransactionInput{Type: "gift", Amount: 1, Category: "X"}, "type"},
		{"empty category", dto.CreateTransactionInput{Type: "expense", Amount: 1, Category: "  "}, "category"},
		{"bad currency", dto.CreateTransactionInput{Type: "expense", Amount: 1, Category: "X", Currency: "GBP"}, "currency"},
		{"bad account", dto.CreateTransactionInput{Type: "expense", Amount: 1, Category: "X", Account: "wallet"}, "account"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(ctx, "owner-a", tt.input)
			var fieldErrs apperrors.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)

			found := false
			for _, fe := range fieldErrs {
				if fe.Field == tt.field {
					found = true
				}
			}
			assert.True(t, found, "expected a field error on %q", tt.field)
		})
	}
}

func TestLedgerService_List_Pagination(t *testing.T) {
	s, _ := newLedger()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		date := time.Date(2025, time.January, i+1, 0, 0, 0, 0, time.UTC)
		_, err := s.Create(ctx, "owner-a", dto.CreateTransactionInput{
			Type: "expense", Amount: 10, Category: "Food", Date: &date,
		})
		require.NoError(t, err)
	}

	list, err := s.List(ctx, "owner-a", dto.ListQuery{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, list.Total)
	assert.Equal(t, 3, list.TotalPages)
	assert.Equal(t, 2, list.CurrentPage)
	assert.Len(t, list.Transactions, 3)

	// Defaults: page 1, limit 50.
	list, err = s.List(ctx, "owner-a", dto.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.CurrentPage)
	assert.Equal(t, 1, list.TotalPages)
	assert.Len(t, list.Transactions, 7)
}

func TestLedgerService_Update_PatchSemantics(t *testing.T) {
	s, _ := newLedger()
	ctx := context.Background()

	created, err := s.Create(ctx, "owner-a", dto.CreateTransactionInput{
		Type:        "expense",
		Amount:      100,
		Category:    "Food",
		Description: "Lunch",
	})
	require.NoError(t, err)

	amount := 120.0
	updated, err := s.Update(ctx, "owner-a", created.ID, dto.UpdateTransactionInput{Amount: &amount})
	require.NoError(t, err)

	// Only the patched field changed.
	assert.Equal(t, 120.0, updated.Amount)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.OwnerID, updated.OwnerID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestLedgerService_Update_RejectsInvalidPatch(t *testing.T) {
	s, _ := newLedger()
	ctx := context.Background()

	created, err := s.Create(ctx, "owner-a", dto.CreateTransactionInput{
		Type: "expense", Amount: 100, Category: "Food",
	})
	require.NoError(t, err)

	bad := -1.0
	_, err = s.Update(ctx, "owner-a", created.ID, dto.UpdateTransactionInput{Amount: &bad})
	var fieldErrs apperrors.FieldErrors
	assert.ErrorAs(t, err, &fieldErrs)

	// Record unchanged after the rejected patch.
	got, err := s.Get(ctx, "owner-a", created.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.Amount)
}

func TestLedgerService_UpdateDelete_NotFound(t *testing.T) {
	s, _ := newLedger()
	ctx := context.Background()

	_, err := s.Update(ctx, "owner-a", "missing", dto.UpdateTransactionInput{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "owner-a", "missing"), apperrors.ErrNotFound)
}

func TestLedgerService_Delete(t *testing.T) {
	s, _ := newLedger()
	ctx := context.Background()

	created, err := s.Create(ctx, "owner-a", dto.CreateTransactionInput{
		Type: "income", Amount: 500, Category: "Salary",
	})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "owner-a", created.ID))
	_, err = s.Get(ctx, "owner-a", created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLedgerService_List_EndDateCoversWholeDay(t *testing.T) {
	s, _ := newLedger()
	ctx := context.Background()

	date := time.Date(2025, time.February, 1, 15, 30, 0, 0, time.UTC)
	_, err := s.Create(ctx, "owner-a", dto.CreateTransactionInput{
		Type: "expense", Amount: 10, Category: "Food", Date: &date,
	})
	require.NoError(t, err)

	end := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	list, err := s.List(ctx, "owner-a", dto.ListQuery{EndDate: &end})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}
