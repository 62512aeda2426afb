package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	announcementApp "bulletin/internal/application/announcement"
	"bulletin/internal/infrastructure/auth"
	"bulletin/internal/infrastructure/config"
	"bulletin/internal/infrastructure/permission"
	"bulletin/internal/interfaces/http/middleware"
	"bulletin/internal/shared/logger"
)

// Container holds infrastructure components, repositories, the application
// service, handlers and middlewares. It wires everything together and
// releases external connections in Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Application services
	announcementService *announcementApp.Service

	// Handlers
	hdlrs *allHandlers

	// Auth & permissions
	jwtSvc   *auth.JWTService
	enforcer *permission.Enforcer

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	markReadLimiter      *middleware.RateLimiter
}

// NewContainer creates a new Container with all dependencies wired together.
// The database must already be migrated.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, Repositories
	c.initInfrastructure()

	// Section 2: Auth - JWT, casbin policies, middlewares
	if err := c.initAuth(); err != nil {
		return nil, err
	}

	// Section 3: Announcements - application service, handlers
	c.initAnnouncements()

	return c, nil
}

// Shutdown releases the connections the container opened. The database
// belongs to the caller.
func (c *Container) Shutdown() error {
	if c.redis == nil {
		return nil
	}
	if err := c.redis.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}
	c.log.Infow("redis client closed")
	return nil
}
