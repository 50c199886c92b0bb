package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool mirrors the pgxpool methods in use; pgxmock satisfies it.
type PgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type TransactionRepository struct {
	db PgxPool
}

func NewTransactionRepository(db PgxPool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// InitOwner is a no-op for the SQL backend: partitions are rows scoped by
// owner_id, so an empty partition needs no setup.
func (r *TransactionRepository) InitOwner(context.Context, string) error {
	return nil
}

const transactionColumns = `id, owner_id, type, amount, currency, category, description, date, account, created_at, updated_at`

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO transactions (`+transactionColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, tx.ID, tx.OwnerID, tx.Type, tx.Amount, tx.Currency, tx.Category,
		tx.Description, tx.Date, tx.Account, tx.CreatedAt, tx.UpdatedAt)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx, `
        SELECT `+transactionColumns+`
        FROM transactions
        WHERE owner_id = $1 AND id = $2
    `, ownerID, id)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return tx, nil
}

func (r *TransactionRepository) List(ctx context.Context, ownerID string, f domain.Filter) ([]domain.Transaction, int, error) {
	where, args := buildWhere(ownerID, f)

	var total int
	countQuery := "SELECT count(*) FROM transactions " + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + transactionColumns + " FROM transactions " + where + " ORDER BY date DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []domain.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *TransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE transactions
        SET type = $3, amount = $4, currency = $5, category = $6,
            description = $7, date = $8, account = $9, updated_at = $10
        WHERE owner_id = $1 AND id = $2
    `, tx.OwnerID, tx.ID, tx.Type, tx.Amount, tx.Currency, tx.Category,
		tx.Description, tx.Date, tx.Account, tx.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, ownerID, id string) error {
	tag, err := r.db.Exec(ctx, `
        DELETE FROM transactions WHERE owner_id = $1 AND id = $2
    `, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func buildWhere(ownerID string, f domain.Filter) (string, []any) {
	conds := []string{"owner_id = $1"}
	args := []any{ownerID}

	if f.Type != "" {
		args = append(args, f.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := row.Scan(&tx.ID, &tx.OwnerID, &tx.Type, &tx.Amount, &tx.Currency,
		&tx.Category, &tx.Description, &tx.Date, &tx.Account, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
