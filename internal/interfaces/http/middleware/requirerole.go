package middleware

import (
	"github.com/gin-gonic/gin"

	"curator/internal/shared/authorization"
	"curator/internal/shared/errors"
	"curator/internal/shared/utils"
)

// RequireRole gates a route on an exact role match. There is no hierarchy:
// a superadmin does not pass an admin-only gate, and vice versa.
func RequireRole(required authorization.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextUserRole)
		if !exists {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Authentication required"))
			c.Abort()
			return
		}

		role, ok := value.(authorization.Role)
		if !ok || !role.Satisfies(required) {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("Insufficient permissions"))
			c.Abort()
			return
		}

		c.Next()
	}
}
