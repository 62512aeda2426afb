package authorization

import (
	"github.com/gin-gonic/gin"

	"bulletin/internal/shared/constants"
)

// CurrentUserID returns the authenticated user id placed in the context by
// the auth middleware.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// CurrentRole returns the caller's role, or an empty role when unauthenticated.
func CurrentRole(c *gin.Context) UserRole {
	return UserRole(c.GetString(constants.ContextKeyUserRole))
}

// SetIdentity stores the verified caller identity on the context.
func SetIdentity(c *gin.Context, userID uint, role UserRole) {
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyUserRole, string(role))
}
