package response

import "github.com/gin-gonic/gin"

// Error writes the flat error body the legacy frontend expects on every
// non-2xx response.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
