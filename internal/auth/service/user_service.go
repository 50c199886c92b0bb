package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/Royal-dudy99/SwiftBooks18/internal/auth/domain UserRepository,ResetTokenStore,Mailer,PartitionInitializer

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Royal-dudy99/SwiftBooks18/config"
	"github.com/Royal-dudy99/SwiftBooks18/internal/auth/domain"
	"github.com/Royal-dudy99/SwiftBooks18/internal/auth/dto"
	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
	applog "github.com/Royal-dudy99/SwiftBooks18/internal/log"
	"github.com/Royal-dudy99/SwiftBooks18/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo   domain.UserRepository
	resets domain.ResetTokenStore
	mailer domain.Mailer
	ledger domain.PartitionInitializer
	tokens TokenGenerator
	cfg    *config.Config
	log    *applog.Logger

	// Dispatch runs the mail hand-off. The default is fire-and-forget on a
	// fresh goroutine; tests swap in a synchronous runner.
	Dispatch func(fn func())
}

func NewUserService(
	repo domain.UserRepository,
	resets domain.ResetTokenStore,
	mailer domain.Mailer,
	ledger domain.PartitionInitializer,
	tokens TokenGenerator,
	cfg *config.Config,
	logger *applog.Logger,
) *UserService {
	return &UserService{
		repo:     repo,
		resets:   resets,
		mailer:   mailer,
		ledger:   ledger,
		tokens:   tokens,
		cfg:      cfg,
		log:      logger.WithComponent("auth"),
		Dispatch: func(fn func()) { go fn() },
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.ledger.InitOwner(ctx, user.ID); err != nil {
		return nil, err
	}

	return s.respond(user)
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password collapse into one error so the
	// response never reveals which accounts exist.
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.respond(user)
}

// RequestPasswordReset succeeds regardless of whether the email is known.
// For existing accounts it stores a hashed single-use token and hands the
// reset link to the mailer off the request path.
func (s *UserService) RequestPasswordReset(ctx context.Context, input dto.ForgotPasswordInput) error {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	raw := make([]byte, constant.ResetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)

	expiresAt := time.Now().Add(time.Duration(s.cfg.ResetTokenExpiryMin) * time.Minute)
	if err := s.resets.Store(ctx, hashResetToken(token), user.ID, expiresAt); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.AppBaseURL, token)
	email := user.Email
	s.Dispatch(func() {
		mailCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.mailer.SendPasswordReset(mailCtx, email, link); err != nil {
			s.log.Warn("password reset mail failed", "email", email, "error", err)
		}
	})

	return nil
}

// ResetPassword redeems a reset token. Consumption is atomic in the
// store, so a token races to exactly one successful redemption.
func (s *UserService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) (*dto.AuthResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := s.resets.Consume(ctx, hashResetToken(input.Token))
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidOrExpiredToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = string(hashed)
	user.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return s.respond(user)
}

func (s *UserService) Profile(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrNotFound
	}
	out := dto.NewUserOutput(user)
	return &out, nil
}

func (s *UserService) respond(user *domain.User) (*dto.AuthResponse, error) {
	token, _, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: dto.NewUserOutput(user)}, nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
