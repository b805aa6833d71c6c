package cases

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new case.
func (r *PGRepo) Create(ctx context.Context, c Case) error {
	const query = `
INSERT INTO cases (id, user_id, case_type, title, description, police_station, location, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.CaseType,
		c.Title,
		c.Description,
		nullableString(c.PoliceStation),
		c.Location,
		c.Status,
		c.CreatedAt,
	)
	return err
}

// GetByID fetches a case by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Case, error) {
	const query = `
SELECT id, user_id, case_type, title, description, police_station, location, status, created_at
FROM cases
WHERE id = $1
LIMIT 1`
	var c Case
	var policeStation sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.UserID,
		&c.CaseType,
		&c.Title,
		&c.Description,
		&policeStation,
		&c.Location,
		&c.Status,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Case{}, ErrNotFound
		}
		return Case{}, err
	}
	if policeStation.Valid {
		c.PoliceStation = policeStation.String
	}
	return c, nil
}

// GetWithOwner fetches a case joined with its owner's name and email.
func (r *PGRepo) GetWithOwner(ctx context.Context, id string) (CaseWithOwner, error) {
	const query = `
SELECT c.id, c.user_id, c.case_type, c.title, c.description, c.police_station, c.location, c.status, c.created_at,
       u.name, u.email
FROM cases c
JOIN users u ON u.id = c.user_id
WHERE c.id = $1
LIMIT 1`
	var cw CaseWithOwner
	var policeStation sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&cw.ID,
		&cw.UserID,
		&cw.CaseType,
		&cw.Title,
		&cw.Description,
		&policeStation,
		&cw.Location,
		&cw.Status,
		&cw.CreatedAt,
		&cw.OwnerName,
		&cw.OwnerEmail,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CaseWithOwner{}, ErrNotFound
		}
		return CaseWithOwner{}, err
	}
	if policeStation.Valid {
		cw.PoliceStation = policeStation.String
	}
	return cw, nil
}

// ListAll returns every case with owner identity, newest first.
func (r *PGRepo) ListAll(ctx context.Context) ([]CaseWithOwner, error) {
	const query = `
SELECT c.id, c.user_id, c.case_type, c.title, c.description, c.police_station, c.location, c.status, c.created_at,
       u.name, u.email
FROM cases c
JOIN users u ON u.id = c.user_id
ORDER BY c.created_at DESC`
	return r.list(ctx, query)
}

// ListByUser returns a user's cases with owner identity, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]CaseWithOwner, error) {
	const query = `
SELECT c.id, c.user_id, c.case_type, c.title, c.description, c.police_station, c.location, c.status, c.created_at,
       u.name, u.email
FROM cases c
JOIN users u ON u.id = c.user_id
WHERE c.user_id = $1
ORDER BY c.created_at DESC`
	return r.list(ctx, query, userID)
}

// Update persists the mutable fields of a case. The owner is never updated.
func (r *PGRepo) Update(ctx context.Context, c Case) error {
	const query = `
UPDATE cases
SET case_type = $1, title = $2, description = $3, police_station = $4, location = $5, status = $6
WHERE id = $7`
	res, err := r.DB.ExecContext(ctx, query,
		c.CaseType,
		c.Title,
		c.Description,
		nullableString(c.PoliceStation),
		c.Location,
		c.Status,
		c.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a case. Its documents are left behind (no cascade).
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// OwnerOf resolves the owning user id of a case.
func (r *PGRepo) OwnerOf(ctx context.Context, id string) (string, error) {
	var ownerID string
	err := r.DB.QueryRowContext(ctx, `SELECT user_id FROM cases WHERE id = $1 LIMIT 1`, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return ownerID, nil
}

func (r *PGRepo) list(ctx context.Context, query string, args ...any) ([]CaseWithOwner, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CaseWithOwner
	for rows.Next() {
		var cw CaseWithOwner
		var policeStation sql.NullString
		if err := rows.Scan(
			&cw.ID,
			&cw.UserID,
			&cw.CaseType,
			&cw.Title,
			&cw.Description,
			&policeStation,
			&cw.Location,
			&cw.Status,
			&cw.CreatedAt,
			&cw.OwnerName,
			&cw.OwnerEmail,
		); err != nil {
			return nil, err
		}
		if policeStation.Valid {
			cw.PoliceStation = policeStation.String
		}
		out = append(out, cw)
	}
	return out, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
