package routes

import (
	"github.com/gin-gonic/gin"

	"bulletin/internal/infrastructure/permission"
	"bulletin/internal/interfaces/http/handlers"
	"bulletin/internal/interfaces/http/handlers/admin"
	"bulletin/internal/interfaces/http/middleware"
)

type AnnouncementRouteConfig struct {
	AnnouncementHandler      *handlers.AnnouncementHandler
	AdminAnnouncementHandler *admin.AnnouncementHandler
	AuthMiddleware           *middleware.AuthMiddleware
	PermissionMiddleware     *middleware.PermissionMiddleware
	MarkReadLimiter          *middleware.RateLimiter
}

func SetupAnnouncementRoutes(api *gin.RouterGroup, config *AnnouncementRouteConfig) {
	perm := config.PermissionMiddleware
	h := config.AnnouncementHandler

	announcements := api.Group("/announcements")
	announcements.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		announcements.GET("", perm.RequirePermission(permission.ResourceFeed, permission.ActionRead), h.ListAnnouncements)

		// Specific named endpoints (must come BEFORE /:id to avoid conflicts)
		announcements.GET("/unread",
			perm.RequirePermission(permission.ResourceFeed, permission.ActionRead),
			h.ListUnread)
		announcements.GET("/unread-count",
			perm.RequirePermission(permission.ResourceFeed, permission.ActionRead),
			h.GetUnreadCount)
		announcements.POST("/read-all",
			perm.RequirePermission(permission.ResourceFeed, permission.ActionMark),
			config.MarkReadLimiter.Limit(),
			h.MarkReadBulk)

		// Parameterized routes (must come LAST)
		announcements.GET("/:id",
			perm.RequirePermission(permission.ResourceFeed, permission.ActionRead),
			h.GetAnnouncement)
		announcements.POST("/:id/read",
			perm.RequirePermission(permission.ResourceFeed, permission.ActionMark),
			config.MarkReadLimiter.Limit(),
			h.MarkRead)
	}

	ah := config.AdminAnnouncementHandler

	adminAnnouncements := api.Group("/admin/announcements")
	adminAnnouncements.Use(config.AuthMiddleware.RequireAuth(), config.AuthMiddleware.RequireAdmin())
	{
		adminAnnouncements.GET("",
			perm.RequirePermission(permission.ResourceAnnouncements, permission.ActionRead),
			ah.ListAnnouncements)
		adminAnnouncements.POST("",
			perm.RequirePermission(permission.ResourceAnnouncements, permission.ActionWrite),
			ah.CreateAnnouncement)
		adminAnnouncements.GET("/:id",
			perm.RequirePermission(permission.ResourceAnnouncements, permission.ActionRead),
			ah.GetAnnouncement)
		adminAnnouncements.PUT("/:id",
			perm.RequirePermission(permission.ResourceAnnouncements, permission.ActionWrite),
			ah.UpdateAnnouncement)
		adminAnnouncements.DELETE("/:id",
			perm.RequirePermission(permission.ResourceAnnouncements, permission.ActionDelete),
			ah.DeleteAnnouncement)
	}
}
