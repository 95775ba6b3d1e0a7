// Package response defines the one JSON envelope every endpoint answers
// with: {"success": true, "data": ...} on the happy path, or
// {"success": false, "error": {"code", "message"}} where code is a stable
// machine-readable string (VALIDATION_ERROR, FORBIDDEN, STATE_CONFLICT,
// NOT_FOUND, ...) and message is for humans.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
