package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/carsapi/carsapi-go/internal/crypto"
	"github.com/carsapi/carsapi-go/internal/model"
	"github.com/carsapi/carsapi-go/internal/repository"
)

const (
	msgRegistered = "User successfully registered"
	msgEmailTaken = "The email has already been taken."
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles authentication business logic.
type AuthService struct {
	repo   *repository.UserRepository
	tokens *TokenService

	// dummyHash is verified when the email is unknown so a failed login
	// takes the same time whether or not the account exists.
	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
	}
}

// Register validates the request, stores a new user and returns it with a fresh token.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)

	verr := &ValidationError{}
	if err := validateStruct(req); err != nil {
		if !errors.As(err, &verr) {
			return model.RegisterResponse{}, err
		}
	}

	// Uniqueness is only worth checking for an otherwise well-formed email.
	if _, bad := verr.Fields["email"]; !bad {
		taken, err := s.repo.EmailExists(ctx, req.Email)
		if err != nil {
			return model.RegisterResponse{}, fmt.Errorf("check email: %w", err)
		}
		if taken {
			verr.Add("email", msgEmailTaken)
		}
	}
	if len(verr.Fields) > 0 {
		return model.RegisterResponse{}, verr
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.RegisterResponse{}, NewValidationError("email", msgEmailTaken)
		}
		return model.RegisterResponse{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return model.RegisterResponse{}, err
	}

	return model.RegisterResponse{
		Message: msgRegistered,
		User:    user.ToResponse(),
		Token:   token.AccessToken,
	}, nil
}

// Login checks the credentials and returns a token envelope.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.Token, error) {
	if err := validateStruct(req); err != nil {
		return model.Token{}, err
	}

	user, err := s.repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.burnDummyVerify(req.Password)
			return model.Token{}, ErrInvalidCredentials
		}
		return model.Token{}, fmt.Errorf("load user: %w", err)
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.Token{}, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		return model.Token{}, ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

// GetUser retrieves a user by ID and returns safe user data.
// A token whose user has since disappeared is treated as unauthorized.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUnauthorized
		}
		return model.UserResponse{}, fmt.Errorf("load user: %w", err)
	}

	return user.ToResponse(), nil
}

// Logout revokes the presented token.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	return s.tokens.Invalidate(ctx, rawToken)
}

// Refresh exchanges the presented token for a new one.
func (s *AuthService) Refresh(ctx context.Context, rawToken string) (model.Token, error) {
	return s.tokens.Refresh(ctx, rawToken)
}

func (s *AuthService) burnDummyVerify(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = crypto.HashPassword("dummy-password-for-timing")
	})
	if s.dummyHash != "" {
		_, _ = crypto.VerifyPassword(password, s.dummyHash)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
