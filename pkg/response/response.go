package response

import "github.com/gin-gonic/gin"

// ErrorBody is the uniform error payload: {"error": "...", "details": ...}.
// Details is only present on validation failures.
type ErrorBody struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// Error writes an error payload with the given status.
func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorBody{Error: message, Details: details})
}

// AbortError writes an error payload and aborts the handler chain. Used by
// middleware so downstream handlers never run with a rejected request.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}
