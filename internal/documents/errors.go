package documents

import "justicehub-backend/internal/shared/apperr"

var (
	ErrNotFound      = apperr.NotFound("Document not found")
	ErrNoFile        = apperr.Validation("Please upload a file")
	ErrUnsupported   = apperr.Validation("Please upload an image or PDF file")
	ErrNotAuthorized = apperr.Unauthorized("Not authorized to manage documents for this case")
)
