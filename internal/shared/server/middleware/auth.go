package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"justicehub-backend/internal/shared/auth"
	"justicehub-backend/internal/shared/authz"
	"justicehub-backend/internal/shared/server/respond"
)

const (
	userIDKey   = "userId"
	userRoleKey = "userRole"
)

// RequireAuth validates the bearer token and stores the authenticated
// principal in the request context.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			respond.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			respond.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
		claims, err := jwtManager.Verify(token)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userRoleKey, claims.Role)
		c.Next()
	}
}

// PrincipalFromContext fetches the identity set by RequireAuth.
func PrincipalFromContext(c *gin.Context) authz.Principal {
	if c == nil {
		return authz.Principal{}
	}
	return authz.Principal{
		ID:   c.GetString(userIDKey),
		Role: c.GetString(userRoleKey),
	}
}

// UserIDFromContext fetches the user ID set by RequireAuth.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(userIDKey)
}
