package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "bulletin/docs"
	"bulletin/internal/infrastructure/config"
	"bulletin/internal/interfaces/http/middleware"
	"bulletin/internal/interfaces/http/routes"
	"bulletin/internal/shared/constants"
	"bulletin/internal/shared/logger"
)

// APIBasePath prefixes every versioned endpoint.
const APIBasePath = constants.APIVersionPrefix

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: container}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.RequestLogger(r.log.Named("http")))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group(APIBasePath)

	routes.SetupAnnouncementRoutes(api, &routes.AnnouncementRouteConfig{
		AnnouncementHandler:      r.hdlrs.announcementHandler,
		AdminAnnouncementHandler: r.hdlrs.adminAnnouncementHandler,
		AuthMiddleware:           r.authMiddleware,
		PermissionMiddleware:     r.permissionMiddleware,
		MarkReadLimiter:          r.markReadLimiter,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
