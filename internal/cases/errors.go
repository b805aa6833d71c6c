package cases

import "justicehub-backend/internal/shared/apperr"

var (
	ErrNotFound      = apperr.NotFound("Case not found")
	ErrNotAuthorized = apperr.Unauthorized("Not authorized to access this case")
)
