package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Royal-dudy99/SwiftBooks18/internal/auth/domain"
	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the subset of pgxpool.Pool the repositories use; pgxmock
// satisfies it in tests.
type PgxPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const uniqueViolation = "23505"

type UserRepository struct {
	db PgxPool
}

func NewUserRepository(db PgxPool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = lower($1)
		LIMIT 1;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1;
	`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
        VALUES ($1, $2, lower($3), $4, $5, $6)
    `, user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.ErrEmailAlreadyInUse
	}
	return err
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE users
        SET name = $2, email = lower($3), password_hash = $4, updated_at = $5
        WHERE id = $1
    `, user.ID, user.Name, user.Email, user.PasswordHash, user.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type ResetTokenStore struct {
	db PgxPool
}

func NewResetTokenStore(db PgxPool) *ResetTokenStore {
	return &ResetTokenStore{db: db}
}

// Store replaces any previous pending token for the user.
func (s *ResetTokenStore) Store(ctx context.Context, tokenHash, userID string, expiresAt time.Time) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM reset_tokens WHERE user_id = $1`, userID); err != nil {
		return err
	}
	_, err := s.db.Exec(ctx, `
        INSERT INTO reset_tokens (token_hash, user_id, expires_at, created_at)
        VALUES ($1, $2, $3, now())
    `, tokenHash, userID, expiresAt)
	return err
}

// Consume deletes and returns in one statement, so concurrent redemptions
// of the same token resolve to a single winner inside the database.
func (s *ResetTokenStore) Consume(ctx context.Context, tokenHash string) (string, error) {
	var userID string
	err := s.db.QueryRow(ctx, `
        DELETE FROM reset_tokens
        WHERE token_hash = $1 AND expires_at > now()
        RETURNING user_id
    `, tokenHash).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrInvalidOrExpiredToken
		}
		return "", err
	}
	return userID, nil
}
