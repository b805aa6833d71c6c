package cases

import "context"

// Repo defines persistence operations for cases.
type Repo interface {
	Create(ctx context.Context, c Case) error
	GetByID(ctx context.Context, id string) (Case, error)
	GetWithOwner(ctx context.Context, id string) (CaseWithOwner, error)
	ListAll(ctx context.Context) ([]CaseWithOwner, error)
	ListByUser(ctx context.Context, userID string) ([]CaseWithOwner, error)
	Update(ctx context.Context, c Case) error
	Delete(ctx context.Context, id string) error
	// OwnerOf resolves a case's owning user id; used by the document
	// pipeline's ownership checks.
	OwnerOf(ctx context.Context, id string) (string, error)
}
