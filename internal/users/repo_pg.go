package users

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new user. A duplicate email maps to ErrEmailTaken.
func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, name, email, password_hash, phone, role, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Role,
		user.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrEmailTaken
	}
	return err
}

// GetByID fetches a user by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (User, error) {
	const query = `
SELECT id, name, email, password_hash, phone, role, reset_password_token, reset_password_expire, created_at
FROM users
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

// GetByEmail fetches a user by email.
func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT id, name, email, password_hash, phone, role, reset_password_token, reset_password_expire, created_at
FROM users
WHERE email = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

// SetResetToken stores a hashed reset token with its expiry.
func (r *PGRepo) SetResetToken(ctx context.Context, id, tokenHash string, expire time.Time) error {
	const query = `
UPDATE users
SET reset_password_token = $1, reset_password_expire = $2
WHERE id = $3`
	res, err := r.DB.ExecContext(ctx, query, tokenHash, expire, id)
	if err != nil {
		return err
	}
	return ensureUpdated(res)
}

// GetByResetToken fetches a user by hashed reset token. Expiry is checked by
// the service.
func (r *PGRepo) GetByResetToken(ctx context.Context, tokenHash string) (User, error) {
	const query = `
SELECT id, name, email, password_hash, phone, role, reset_password_token, reset_password_expire, created_at
FROM users
WHERE reset_password_token = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, tokenHash))
}

// UpdatePassword replaces the stored hash and clears any reset token.
func (r *PGRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `
UPDATE users
SET password_hash = $1, reset_password_token = NULL, reset_password_expire = NULL
WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	return ensureUpdated(res)
}

func (r *PGRepo) scanOne(row *sql.Row) (User, error) {
	var user User
	var resetToken sql.NullString
	var resetExpire sql.NullTime
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Role,
		&resetToken,
		&resetExpire,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if resetToken.Valid {
		user.ResetPasswordToken = resetToken.String
	}
	if resetExpire.Valid {
		user.ResetPasswordExpire = &resetExpire.Time
	}
	return user, nil
}

func ensureUpdated(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
