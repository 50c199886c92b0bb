package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Royal-dudy99/SwiftBooks18/internal/auth/domain"
	repo "github.com/Royal-dudy99/SwiftBooks18/internal/auth/repository/postgres"
	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()
	email := "test@example.com"

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs(email).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", "Test", email, "hash", time.Now(), time.Now()))

		user, err := r.GetByEmail(ctx, email)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-123", user.ID)
	})

	t.Run("not found returns nil user and nil error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs(email).
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs(email).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, email)
		assert.Error(t, err)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow("user-123", "Test", "test@example.com", "hash", time.Now(), time.Now()))

		user, err := r.GetByID(ctx, "user-123")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()
	user := &domain.User{
		ID:           "user-123",
		Name:         "Test",
		Email:        "new@example.com",
		PasswordHash: "new-hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Create(ctx, user))
	})

	t.Run("unique violation maps to the conflict error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		assert.ErrorIs(t, r.Create(ctx, user), apperrors.ErrEmailAlreadyInUse)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.Create(ctx, user))
	})
}

func TestUserRepository_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewUserRepository(mock)
	ctx := context.Background()
	user := &domain.User{ID: "user-123", Name: "Test", Email: "a@x.com", PasswordHash: "hash", UpdatedAt: time.Now()}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.Save(ctx, user))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, r.Save(ctx, user), apperrors.ErrNotFound)
	})
}

func TestResetTokenStore_Store(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := repo.NewResetTokenStore(mock)
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	t.Run("replaces any pending token first", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM reset_tokens").
			WithArgs("user-123").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectExec("INSERT INTO reset_tokens").
			WithArgs("hash-abc", "user-123", expiresAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, s.Store(ctx, "hash-abc", "user-123", expiresAt))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM reset_tokens").
			WithArgs("user-123").
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, s.Store(ctx, "hash-abc", "user-123", expiresAt))
	})
}

func TestResetTokenStore_Consume(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := repo.NewResetTokenStore(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM reset_tokens").
			WithArgs("hash-abc").
			WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow("user-123"))

		userID, err := s.Consume(ctx, "hash-abc")
		require.NoError(t, err)
		assert.Equal(t, "user-123", userID)
	})

	t.Run("unknown or expired token", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM reset_tokens").
			WithArgs("hash-abc").
			WillReturnError(pgx.ErrNoRows)

		_, err := s.Consume(ctx, "hash-abc")
		assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpiredToken)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("DELETE FROM reset_tokens").
			WithArgs("hash-abc").
			WillReturnError(fmt.Errorf("db error"))

		_, err := s.Consume(ctx, "hash-abc")
		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrInvalidOrExpiredToken)
	})
}
