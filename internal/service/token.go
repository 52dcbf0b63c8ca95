package service

import (
	"context"
	"fmt"
	"time"

	"github.com/carsapi/carsapi-go/internal/crypto"
	"github.com/carsapi/carsapi-go/internal/model"
	"github.com/carsapi/carsapi-go/internal/repository"
)

// ErrUnauthorized wraps crypto.ErrInvalidToken so transport layers can match either.
var ErrUnauthorized = fmt.Errorf("unauthorized: %w", crypto.ErrInvalidToken)

// TokenService issues, validates, refreshes and revokes bearer tokens.
type TokenService struct {
	secret   string
	ttl      time.Duration
	denylist repository.TokenDenylist
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret string, ttl time.Duration, denylist repository.TokenDenylist) *TokenService {
	return &TokenService{
		secret:   secret,
		ttl:      ttl,
		denylist: denylist,
	}
}

// Issue mints a signed token for userID.
func (s *TokenService) Issue(userID int64) (model.Token, error) {
	signed, _, err := crypto.GenerateToken(userID, s.secret, s.ttl)
	if err != nil {
		return model.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return model.Token{
		AccessToken: signed,
		TokenType:   model.TokenTypeBearer,
		ExpiresIn:   int64(s.ttl / time.Second),
	}, nil
}

// Validate checks signature, expiry and revocation of raw and returns its claims.
// Every failure other than a denylist lookup error is reported as ErrUnauthorized.
func (s *TokenService) Validate(ctx context.Context, raw string) (*crypto.Claims, error) {
	claims, err := crypto.ValidateToken(raw, s.secret)
	if err != nil {
		return nil, ErrUnauthorized
	}

	revoked, err := s.denylist.Contains(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check token denylist: %w", err)
	}
	if revoked {
		return nil, ErrUnauthorized
	}

	return claims, nil
}

// Refresh swaps a valid token for a new one and revokes the old token.
func (s *TokenService) Refresh(ctx context.Context, raw string) (model.Token, error) {
	claims, err := s.Validate(ctx, raw)
	if err != nil {
		return model.Token{}, err
	}

	token, err := s.Issue(claims.UserID)
	if err != nil {
		return model.Token{}, err
	}

	if err := s.revoke(ctx, claims); err != nil {
		return model.Token{}, err
	}

	return token, nil
}

// Invalidate revokes raw before its natural expiry. Tokens that are already
// invalid, expired or revoked are left alone, so calling it twice is harmless.
func (s *TokenService) Invalidate(ctx context.Context, raw string) error {
	claims, err := crypto.ValidateToken(raw, s.secret)
	if err != nil {
		return nil
	}
	return s.revoke(ctx, claims)
}

// TTL returns the lifetime of issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func (s *TokenService) revoke(ctx context.Context, claims *crypto.Claims) error {
	if err := s.denylist.Add(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("denylist token: %w", err)
	}
	return nil
}
