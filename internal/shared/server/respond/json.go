package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Data writes a {success, data} envelope with the given status.
func Data(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// List writes a {success, count, data} envelope for collection responses.
func List(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

// Token writes a {success, token} envelope after authentication.
func Token(c *gin.Context, status int, token string) {
	c.JSON(status, gin.H{"success": true, "token": token})
}

// JSON writes an arbitrary payload with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}
