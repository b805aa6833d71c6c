package users

import (
	"context"
	"time"
)

// Repo defines persistence operations for user accounts.
type Repo interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	SetResetToken(ctx context.Context, id, tokenHash string, expire time.Time) error
	GetByResetToken(ctx context.Context, tokenHash string) (User, error)
	// UpdatePassword replaces the stored hash and clears any reset token.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
