package dto

import (
	"strings"
	"time"

	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/domain"
)

type CreateTransactionInput struct {
	Type        string     `json:"type"`
	Amount      float64    `json:"amount"`
	Currency    string     `json:"currency"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Account     string     `json:"account"`
}

func (in *CreateTransactionInput) Normalize() {
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	if in.Currency == "" {
		in.Currency = string(domain.CurrencyINR)
	}
	if in.Account == "" {
		in.Account = string(domain.AccountCash)
	}
}

func (in CreateTransactionInput) Validate() error {
	var errs apperrors.FieldErrors
	if !domain.Type(in.Type).Valid() {
		errs = errs.Add("type", "type must be one of income, expense, transfer, loan, lend")
	}
	if in.Amount <= 0 {
		errs = errs.Add("amount", "amount must be greater than 0")
	}
	if !domain.Currency(in.Currency).Valid() {
		errs = errs.Add("currency", "currency must be one of INR, USD, EUR")
	}
	if in.Category == "" {
		errs = errs.Add("category", "category is required")
	}
	if !domain.Account(in.Account).Valid() {
		errs = errs.Add("account", "account must be one of cash, account, card")
	}
	return errs.OrNil()
}

// UpdateTransactionInput carries patch semantics: nil fields are left
// untouched on the stored record.
type UpdateTransactionInput struct {
	Type        *string    `json:"type"`
	Amount      *float64   `json:"amount"`
	Currency    *string    `json:"currency"`
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Account     *string    `json:"account"`
}

// Apply merges the patch into tx. The merged record is validated by the
// service before it is persisted.
func (in UpdateTransactionInput) Apply(tx *domain.Transaction) {
	if in.Type != nil {
		tx.Type = domain.Type(*in.Type)
	}
	if in.Amount != nil {
		tx.Amount = *in.Amount
	}
	if in.Currency != nil {
		tx.Currency = domain.Currency(*in.Currency)
	}
	if in.Category != nil {
		tx.Category = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		tx.Description = strings.TrimSpace(*in.Description)
	}
	if in.Date != nil {
		tx.Date = *in.Date
	}
	if in.Account != nil {
		tx.Account = domain.Account(*in.Account)
	}
}

type ListQuery struct {
	Page      int
	Limit     int
	Type      string
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionList is the paginated list envelope.
type TransactionList struct {
	Transactions []domain.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
	TotalPages   int                  `json:"totalPages"`
	CurrentPage  int                  `json:"currentPage"`
}
