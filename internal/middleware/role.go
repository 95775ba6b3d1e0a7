package middleware

import (
	"net/http"

	"trainmydog/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has the specified role.
// The role comes from the token claims, a snapshot taken at login: a freshly
// promoted trainer reaches these routes after their next login, and data that
// must reflect the current role (catalog visibility) is checked against the
// database instead of the claim.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// TrainerOnly requires the trainer role
func TrainerOnly() gin.HandlerFunc {
	return RequireRole("trainer")
}

// AdminOnly requires the admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
