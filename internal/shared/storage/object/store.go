package object

import (
	"context"
	"io"
)

// Stored describes an object written to remote storage.
type Stored struct {
	Key       string
	URL       string
	SizeBytes int64
	MimeType  string
}

// ObjectStore defines the contract for saving, retrieving, and removing
// binary objects.
type ObjectStore interface {
	Save(ctx context.Context, caseID string, fileName string, r io.Reader) (Stored, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
	Delete(ctx context.Context, storageKey string) error
}
