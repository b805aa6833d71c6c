package users

import "time"

// User is an account record. PasswordHash and the reset token fields are
// never serialized.
type User struct {
	ID                  string
	Name                string
	Email               string
	PasswordHash        string
	Phone               string
	Role                string
	ResetPasswordToken  string // sha256 hex of the raw token
	ResetPasswordExpire *time.Time
	CreatedAt           time.Time
}
