package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"justicehub-backend/internal/shared/apperr"
	"justicehub-backend/internal/shared/telemetry"
)

// Error sends the uniform {success:false, error} body and logs the failure.
func Error(c *gin.Context, status int, message string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}

// HandleError is the single translator from internal failures to HTTP
// responses. Unknown errors become a generic 500 without leaking detail.
func HandleError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		Error(c, http.StatusBadRequest, apperr.MessageOf(err, "Invalid request"))
	case apperr.KindUnauthorized:
		Error(c, http.StatusUnauthorized, apperr.MessageOf(err, "Not authorized"))
	case apperr.KindNotFound:
		Error(c, http.StatusNotFound, apperr.MessageOf(err, "Resource not found"))
	case apperr.KindConflict:
		Error(c, http.StatusConflict, apperr.MessageOf(err, "Resource already exists"))
	default:
		telemetry.Error("internal.error", map[string]any{
			"error":      err.Error(),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("requestId"),
		})
		Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
