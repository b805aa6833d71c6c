package cases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateNullsEmptyPoliceStation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	c := Case{
		ID:          "case-1",
		UserID:      "user-1",
		CaseType:    CaseTypeDV,
		Title:       "Protection order follow-up",
		Description: "Hearing scheduled",
		Location:    "Pune",
		Status:      StatusActive,
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO cases").
		WithArgs(
			c.ID,
			c.UserID,
			c.CaseType,
			c.Title,
			c.Description,
			nil, // police_station
			c.Location,
			c.Status,
			c.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetWithOwnerJoinsUsers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "case_type", "title", "description",
		"police_station", "location", "status", "created_at",
		"name", "email",
	}).AddRow(
		"case-1", "user-1", CaseType498A, "Title", "Desc",
		"Shivajinagar PS", "Pune", StatusActive, created,
		"Asha", "asha@example.com",
	)

	mock.ExpectQuery("SELECT (.+) FROM cases c").
		WithArgs("case-1").
		WillReturnRows(rows)

	cw, err := repo.GetWithOwner(context.Background(), "case-1")
	if err != nil {
		t.Fatalf("GetWithOwner: %v", err)
	}
	if cw.OwnerName != "Asha" || cw.OwnerEmail != "asha@example.com" {
		t.Fatalf("expected owner identity, got %+v", cw)
	}
	if cw.PoliceStation != "Shivajinagar PS" {
		t.Fatalf("expected police station, got %q", cw.PoliceStation)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE cases").
		WithArgs(CaseTypeDV, "Title", "Desc", nil, "Pune", StatusClosed, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), Case{
		ID:          "missing",
		CaseType:    CaseTypeDV,
		Title:       "Title",
		Description: "Desc",
		Location:    "Pune",
		Status:      StatusClosed,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDeleteMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM cases").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
