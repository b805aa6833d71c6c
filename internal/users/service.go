package users

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"justicehub-backend/internal/shared/auth"
	"justicehub-backend/internal/shared/authz"
)

const resetTokenTTL = 15 * time.Minute

// Service contains account and authentication logic.
type Service struct {
	Repo Repo
	JWT  *auth.JWTManager
}

// RegisterInput is the data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// Register creates a user with a hashed password and returns a signed token.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, string, error) {
	email := normalizeEmail(in.Email)

	// Hash on write, so plaintext never reaches the repo.
	passwordHash, err := auth.HashPassword(in.Password)
	if err != nil {
		return User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: passwordHash,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         authz.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, "", err
	}

	token, err := s.JWT.Generate(user.ID, user.Role)
	if err != nil {
		return User{}, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	user, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.JWT.Generate(user.ID, user.Role)
	if err != nil {
		return User{}, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// GetByID fetches a user by id.
func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.Repo.GetByID(ctx, id)
}

// ForgotPassword stores a hashed reset token for the account and returns the
// raw token for delivery.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}

	var raw [20]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw[:])

	expire := time.Now().UTC().Add(resetTokenTTL)
	if err := s.Repo.SetResetToken(ctx, user.ID, hashResetToken(token), expire); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword consumes a raw reset token, rehashes the new password, and
// returns a fresh signed token.
func (s *Service) ResetPassword(ctx context.Context, rawToken, password string) (User, string, error) {
	user, err := s.Repo.GetByResetToken(ctx, hashResetToken(rawToken))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrInvalidResetToken
		}
		return User{}, "", err
	}
	if user.ResetPasswordExpire == nil || time.Now().UTC().After(*user.ResetPasswordExpire) {
		return User{}, "", ErrInvalidResetToken
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return User{}, "", fmt.Errorf("hash password: %w", err)
	}
	if err := s.Repo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return User{}, "", err
	}

	token, err := s.JWT.Generate(user.ID, user.Role)
	if err != nil {
		return User{}, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
