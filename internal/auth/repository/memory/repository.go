// Package memory holds the in-process credential and reset-token stores.
// They back the default deployment; the postgres package implements the
// same interfaces for durable setups.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Royal-dudy99/SwiftBooks18/internal/auth/domain"
	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
)

type UserRepository struct {
	mu      sync.RWMutex
	users   map[string]*domain.User
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, nil
	}
	return copyUser(r.users[id]), nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(user), nil
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return apperrors.ErrEmailAlreadyInUse
	}

	r.users[user.ID] = copyUser(user)
	r.byEmail[key] = user.ID
	return nil
}

func (r *UserRepository) Save(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[user.ID]
	if !ok {
		return apperrors.ErrNotFound
	}

	if oldKey, newKey := emailKey(current.Email), emailKey(user.Email); oldKey != newKey {
		if _, exists := r.byEmail[newKey]; exists {
			return apperrors.ErrEmailAlreadyInUse
		}
		delete(r.byEmail, oldKey)
		r.byEmail[newKey] = user.ID
	}

	r.users[user.ID] = copyUser(user)
	return nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

type resetRecord struct {
	userID    string
	expiresAt time.Time
}

// ResetTokenStore keeps pending reset tokens keyed by token hash. One
// active token per user: a new request replaces the previous one.
type ResetTokenStore struct {
	mu      sync.Mutex
	byHash  map[string]resetRecord
	byUser  map[string]string
	nowFunc func() time.Time
}

func NewResetTokenStore() *ResetTokenStore {
	return &ResetTokenStore{
		byHash:  make(map[string]resetRecord),
		byUser:  make(map[string]string),
		nowFunc: time.Now,
	}
}

func (s *ResetTokenStore) Store(_ context.Context, tokenHash, userID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.byUser[userID]; ok {
		delete(s.byHash, prev)
	}
	s.byHash[tokenHash] = resetRecord{userID: userID, expiresAt: expiresAt}
	s.byUser[userID] = tokenHash
	return nil
}

// Consume removes the token under the lock, so concurrent redemptions of
// the same token see exactly one winner. Expired records are dropped and
// rejected in the same step.
func (s *ResetTokenStore) Consume(_ context.Context, tokenHash string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byHash[tokenHash]
	if !ok {
		return "", apperrors.ErrInvalidOrExpiredToken
	}

	delete(s.byHash, tokenHash)
	delete(s.byUser, rec.userID)

	if s.nowFunc().After(rec.expiresAt) {
		return "", apperrors.ErrInvalidOrExpiredToken
	}
	return rec.userID, nil
}
