package documents

import "context"

// Repo defines persistence operations for document metadata.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, id string) (Document, error)
	ListByCase(ctx context.Context, caseID string) ([]Document, error)
	Delete(ctx context.Context, id string) error
}
