package documents

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"justicehub-backend/internal/shared/apperr"
	"justicehub-backend/internal/shared/authz"
	"justicehub-backend/internal/shared/metrics"
	"justicehub-backend/internal/shared/storage/object"
	"justicehub-backend/internal/shared/telemetry"
)

// CaseOwners resolves a case's owning user id. The cases repo satisfies
// this; the indirection keeps this package independent of the cases package.
type CaseOwners interface {
	OwnerOf(ctx context.Context, caseID string) (string, error)
}

// Service runs the upload pipeline: validate, store remotely, persist
// metadata. It also lists and deletes case documents.
type Service struct {
	Store         object.ObjectStore
	Repo          Repo
	Cases         CaseOwners
	MaxFileUpload int64 // bytes; 0 disables the size check
}

// Attach validates the incoming file, forwards it to object storage, and
// records the resulting document against the case. Validation happens before
// any remote call. If persisting the record fails, the stored object is
// removed so no half-linked state survives.
func (s *Service) Attach(ctx context.Context, p authz.Principal, caseID, fileName string, size int64, r io.Reader) (Document, error) {
	metrics.IncUploadStarted()
	start := metrics.NowMillis()
	doc, err := s.attach(ctx, p, caseID, fileName, size, r)
	if err != nil {
		metrics.IncUploadFailed()
		return Document{}, err
	}
	metrics.IncUploadCompleted()
	metrics.ObserveUploadDurationMs(metrics.NowMillis() - start)
	return doc, nil
}

func (s *Service) attach(ctx context.Context, p authz.Principal, caseID, fileName string, size int64, r io.Reader) (Document, error) {
	ownerID, err := s.Cases.OwnerOf(ctx, caseID)
	if err != nil {
		return Document{}, err
	}
	if !authz.CanAccess(p, ownerID) {
		return Document{}, ErrNotAuthorized
	}

	if s.MaxFileUpload > 0 && size > s.MaxFileUpload {
		return Document{}, apperr.Validationf("Please upload a file less than %dMB", s.MaxFileUpload/1000000)
	}

	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return Document{}, apperr.Wrap(apperr.KindValidation, "Unable to read file", readErr)
	}
	mimeType := http.DetectContentType(sniff[:n])
	if !supportedMimeType(mimeType) {
		return Document{}, ErrUnsupported
	}

	body := io.MultiReader(bytes.NewReader(sniff[:n]), r)
	stored, err := s.Store.Save(ctx, caseID, fileName, body)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:         uuid.NewString(),
		UserID:     p.ID,
		CaseID:     caseID,
		Name:       fileName,
		URL:        stored.URL,
		StorageKey: stored.Key,
		Format:     formatFor(stored.MimeType, fileName),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		// Roll back the remote write so the upload is all-or-nothing.
		if delErr := s.Store.Delete(ctx, stored.Key); delErr != nil {
			telemetry.Warn("document.rollback_failed", map[string]any{
				"storage_key": stored.Key,
				"error":       delErr.Error(),
			})
		}
		return Document{}, err
	}

	return doc, nil
}

// ListForCase returns a case's documents, enforcing the ownership policy.
func (s *Service) ListForCase(ctx context.Context, p authz.Principal, caseID string) ([]Document, error) {
	ownerID, err := s.Cases.OwnerOf(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if !authz.CanAccess(p, ownerID) {
		return nil, ErrNotAuthorized
	}
	return s.Repo.ListByCase(ctx, caseID)
}

// Delete removes a document's remote object and metadata. Authorization is
// checked against the parent case's owner; if the case is gone the uploader
// stands in as owner.
func (s *Service) Delete(ctx context.Context, p authz.Principal, id string) error {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ownerID, err := s.Cases.OwnerOf(ctx, doc.CaseID)
	if err != nil {
		if apperr.KindOf(err) != apperr.KindNotFound {
			return err
		}
		ownerID = doc.UserID
	}
	if !authz.CanAccess(p, ownerID) {
		return ErrNotAuthorized
	}

	if err := s.Store.Delete(ctx, doc.StorageKey); err != nil {
		telemetry.Warn("document.remote_delete_failed", map[string]any{
			"document_id": doc.ID,
			"storage_key": doc.StorageKey,
			"error":       err.Error(),
		})
	}
	return s.Repo.Delete(ctx, id)
}

func supportedMimeType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image") || mimeType == "application/pdf"
}

// formatFor mirrors the remote store's detected resource format: the mime
// subtype for known types, the file extension otherwise.
func formatFor(mimeType, fileName string) string {
	if mimeType == "application/pdf" {
		return "pdf"
	}
	if strings.HasPrefix(mimeType, "image/") {
		sub := strings.TrimPrefix(mimeType, "image/")
		if i := strings.IndexByte(sub, ';'); i >= 0 {
			sub = sub[:i]
		}
		return sub
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
}
