package domain

import "time"

type Type string

const (
	TypeIncome   Type = "income"
	TypeExpense  Type = "expense"
	TypeTransfer Type = "transfer"
	TypeLoan     Type = "loan"
	TypeLend     Type = "lend"
)

func (t Type) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer, TypeLoan, TypeLend:
		return true
	}
	return false
}

type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyINR, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

type Account string

const (
	AccountCash    Account = "cash"
	AccountAccount Account = "account"
	AccountCard    Account = "card"
)

func (a Account) Valid() bool {
	switch a {
	case AccountCash, AccountAccount, AccountCard:
		return true
	}
	return false
}

// Transaction is one ledger entry. OwnerID is immutable after creation
// and every access is scoped to it.
type Transaction struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"-"`
	Type        Type      `json:"type"`
	Amount      float64   `json:"amount"`
	Currency    Currency  `json:"currency"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Account     Account   `json:"account"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
