package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bulletin/internal/shared/authorization"
	"bulletin/internal/shared/logger"
	"bulletin/internal/shared/utils"
)

// PermissionChecker decides whether a subject may perform action on resource.
type PermissionChecker interface {
	Enforce(subject, resource, action string) (bool, error)
}

type PermissionMiddleware struct {
	checker PermissionChecker
	logger  logger.Interface
}

func NewPermissionMiddleware(checker PermissionChecker, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		checker: checker,
		logger:  logger,
	}
}

// RequirePermission checks the caller's role first and falls back to a
// per-user grant, so individual users can be given extra rights.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := authorization.CurrentUserID(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}
		role := authorization.CurrentRole(c)

		subjects := []string{role.String(), strconv.FormatUint(uint64(userID), 10)}
		for _, subject := range subjects {
			if subject == "" {
				continue
			}
			allowed, err := m.checker.Enforce(subject, resource, action)
			if err != nil {
				m.logger.Errorw("permission check failed", "error", err, "user_id", userID, "resource", resource, "action", action)
				utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
				c.Abort()
				return
			}
			if allowed {
				c.Next()
				return
			}
		}

		m.logger.Warnw("permission denied", "user_id", userID, "role", role, "resource", resource, "action", action)
		utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
		c.Abort()
	}
}
