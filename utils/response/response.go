package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error body returned by the API
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Message sends a standardized informational response
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// ValidationError sends a response for validation errors
func ValidationError(c *gin.Context, errors map[string]string) {
	c.JSON(400, gin.H{"errors": errors})
}
