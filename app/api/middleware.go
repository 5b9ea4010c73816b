package api

import (
	"github.com/gin-gonic/gin"
	"github.com/metrorail/docudesk/models"
)

// ContextPermissions is the gin context key under which the authentication
// middleware stores the caller's combined permission bitfield.
const ContextPermissions = "permissions"

// Can gates a route on a permission flag. SUPERADMIN passes every check.
func Can(flag models.Permissions) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextPermissions)
		if !exists {
			ForbiddenResponse(c, "Access Denied: Permissions not found in context")
			c.Abort()
			return
		}

		permissions, ok := value.(models.Permissions)
		if !ok {
			ForbiddenResponse(c, "Access Denied: Invalid permissions data in context")
			c.Abort()
			return
		}

		if permissions.Has(models.PermSuperadmin) || permissions.Has(flag) {
			c.Next()
			return
		}

		ForbiddenResponse(c, "Access Denied: You do not have the required permission")
		c.Abort()
	}
}
