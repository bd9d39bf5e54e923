package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope used by operational endpoints (health).
// Catalog resources are sent bare, as the storefront script expects.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// JSON sends data without an envelope.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Text sends a human-readable sentence as text/plain. Catalog errors are
// reported this way.
func Text(c *gin.Context, statusCode int, message string) {
	c.String(statusCode, message)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Text(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Text(c, http.StatusNotFound, message)
}

func TooManyRequests(c *gin.Context, message string) {
	Text(c, http.StatusTooManyRequests, message)
}

func InternalServerError(c *gin.Context, message string) {
	Text(c, http.StatusInternalServerError, message)
}
