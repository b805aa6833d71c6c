package users

import "justicehub-backend/internal/shared/apperr"

var (
	ErrNotFound           = apperr.NotFound("User not found")
	ErrEmailTaken         = apperr.Conflict("Email is already registered")
	ErrInvalidCredentials = apperr.Unauthorized("Invalid email or password")
	ErrInvalidResetToken  = apperr.Validation("Password reset token is invalid or has expired")
)
