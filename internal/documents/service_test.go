package documents

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"justicehub-backend/internal/shared/apperr"
	"justicehub-backend/internal/shared/authz"
	"justicehub-backend/internal/shared/storage/object"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

type staticOwners map[string]string

func (o staticOwners) OwnerOf(ctx context.Context, caseID string) (string, error) {
	ownerID, ok := o[caseID]
	if !ok {
		return "", apperr.NotFound("Case not found")
	}
	return ownerID, nil
}

// fakeStore records Save and Delete calls.
type fakeStore struct {
	saves   int
	deletes []string
	saveErr error
}

func (s *fakeStore) Save(ctx context.Context, caseID string, fileName string, r io.Reader) (object.Stored, error) {
	if s.saveErr != nil {
		return object.Stored{}, s.saveErr
	}
	s.saves++
	data, err := io.ReadAll(r)
	if err != nil {
		return object.Stored{}, err
	}
	return object.Stored{
		Key:       "justicehub/" + caseID + "/" + fileName,
		URL:       "https://store.example.com/" + caseID + "/" + fileName,
		SizeBytes: int64(len(data)),
		MimeType:  "image/png",
	}, nil
}

func (s *fakeStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeStore) Delete(ctx context.Context, storageKey string) error {
	s.deletes = append(s.deletes, storageKey)
	return nil
}

// failingRepo rejects every insert.
type failingRepo struct {
	*MemoryRepo
}

func (r *failingRepo) Create(ctx context.Context, doc Document) error {
	return errors.New("insert failed")
}

func newTestService(store *fakeStore) *Service {
	return &Service{
		Store:         store,
		Repo:          NewMemoryRepo(),
		Cases:         staticOwners{"case-1": "u1"},
		MaxFileUpload: 1 << 20,
	}
}

func TestAttachStoresAndPersists(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	owner := authz.Principal{ID: "u1", Role: authz.RoleUser}

	doc, err := svc.Attach(context.Background(), owner, "case-1", "evidence.png", int64(len(pngBytes)), bytes.NewReader(pngBytes))
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("expected 1 store save, got %d", store.saves)
	}
	if doc.Format != "png" {
		t.Fatalf("expected format png, got %q", doc.Format)
	}
	if doc.UserID != "u1" || doc.CaseID != "case-1" {
		t.Fatalf("unexpected ownership on document: %+v", doc)
	}

	listed, err := svc.ListForCase(context.Background(), owner, "case-1")
	if err != nil {
		t.Fatalf("ListForCase: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != doc.ID {
		t.Fatalf("expected the attached document, got %+v", listed)
	}
}

func TestAttachRejectsUnsupportedTypeBeforeStore(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	owner := authz.Principal{ID: "u1", Role: authz.RoleUser}

	payload := []byte("plain text, not an image")
	_, err := svc.Attach(context.Background(), owner, "case-1", "notes.txt", int64(len(payload)), bytes.NewReader(payload))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("store called for rejected file")
	}
}

func TestAttachRejectsOversizeFileBeforeStore(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	svc.MaxFileUpload = 2000000
	owner := authz.Principal{ID: "u1", Role: authz.RoleUser}

	_, err := svc.Attach(context.Background(), owner, "case-1", "big.png", 3000000, bytes.NewReader(pngBytes))
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got, want := apperr.MessageOf(err, ""), "Please upload a file less than 2MB"; got != want {
		t.Fatalf("expected message %q, got %q", want, got)
	}
	if store.saves != 0 {
		t.Fatalf("store called for oversize file")
	}
}

func TestAttachEnforcesCaseOwnership(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	other := authz.Principal{ID: "u2", Role: authz.RoleUser}

	_, err := svc.Attach(context.Background(), other, "case-1", "evidence.png", int64(len(pngBytes)), bytes.NewReader(pngBytes))
	if !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("store called for unauthorized upload")
	}

	admin := authz.Principal{ID: "u9", Role: authz.RoleAdmin}
	if _, err := svc.Attach(context.Background(), admin, "case-1", "evidence.png", int64(len(pngBytes)), bytes.NewReader(pngBytes)); err != nil {
		t.Fatalf("admin Attach: %v", err)
	}
}

func TestAttachRollsBackStoredObjectWhenPersistFails(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	svc.Repo = &failingRepo{MemoryRepo: NewMemoryRepo()}
	owner := authz.Principal{ID: "u1", Role: authz.RoleUser}

	_, err := svc.Attach(context.Background(), owner, "case-1", "evidence.png", int64(len(pngBytes)), bytes.NewReader(pngBytes))
	if err == nil {
		t.Fatalf("expected error from failing repo")
	}
	if len(store.deletes) != 1 {
		t.Fatalf("expected stored object to be deleted, got %v", store.deletes)
	}
	if !strings.Contains(store.deletes[0], "case-1") {
		t.Fatalf("unexpected rollback key %q", store.deletes[0])
	}
}

func TestDeleteChecksParentCaseOwner(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	owner := authz.Principal{ID: "u1", Role: authz.RoleUser}
	other := authz.Principal{ID: "u2", Role: authz.RoleUser}

	doc, err := svc.Attach(context.Background(), owner, "case-1", "evidence.png", int64(len(pngBytes)), bytes.NewReader(pngBytes))
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}

	if err := svc.Delete(context.Background(), other, doc.ID); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if err := svc.Delete(context.Background(), owner, doc.ID); err != nil {
		t.Fatalf("owner Delete: %v", err)
	}
	if _, err := svc.Repo.GetByID(context.Background(), doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteFallsBackToUploaderWhenCaseGone(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	owner := authz.Principal{ID: "u1", Role: authz.RoleUser}

	doc, err := svc.Attach(context.Background(), owner, "case-1", "evidence.png", int64(len(pngBytes)), bytes.NewReader(pngBytes))
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}

	// The parent case disappears; the uploader can still clean up.
	svc.Cases = staticOwners{}

	if err := svc.Delete(context.Background(), owner, doc.ID); err != nil {
		t.Fatalf("Delete after case removal: %v", err)
	}
}
