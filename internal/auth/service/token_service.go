package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/Royal-dudy99/SwiftBooks18/internal/auth/service TokenGenerator

import (
	"time"

	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Issue(userID, email string) (string, time.Time, error)
	Verify(tokenString string) (*Claims, error)
	Expiry() time.Duration
}

// Claims is the self-contained session credential payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type TokenService struct {
	Secret      string
	TokenExpiry time.Duration

	// Now is the clock used for issuing and validating; tests override it.
	Now func() time.Time
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret:      secret,
		TokenExpiry: time.Duration(expiryMinutes) * time.Minute,
		Now:         time.Now,
	}
}

func (ts *TokenService) Issue(userID, email string) (string, time.Time, error) {
	now := ts.Now()
	expiresAt := now.Add(ts.TokenExpiry)

	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Verify parses and validates a session token. Tampered, malformed and
// expired tokens all fail the same way so callers cannot tell them apart.
func (ts *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(ts.Secret), nil
	}, jwt.WithTimeFunc(ts.Now))

	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

func (ts *TokenService) Expiry() time.Duration {
	return ts.TokenExpiry
}
