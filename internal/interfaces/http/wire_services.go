package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	announcementApp "bulletin/internal/application/announcement"
	"bulletin/internal/application/announcement/usecases"
	"bulletin/internal/domain/announcement"
	"bulletin/internal/infrastructure/auth"
	"bulletin/internal/infrastructure/config"
	"bulletin/internal/infrastructure/permission"
	"bulletin/internal/infrastructure/ratelimit"
	"bulletin/internal/interfaces/http/handlers"
	adminHandlers "bulletin/internal/interfaces/http/handlers/admin"
	"bulletin/internal/interfaces/http/middleware"
	"bulletin/internal/shared/logger"
	"bulletin/internal/shared/services/content"
)

// ============================================================
// Section 1: Infrastructure - Redis, Repositories
// ============================================================

func (c *Container) initInfrastructure() {
	c.redis = initRedis(c.cfg, c.log)
	c.repos = newRepositories(c.db)
}

// initRedis returns nil when Redis is disabled. An unreachable server is
// logged and the client kept: the rate limiter fails open until it recovers.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled, mark-read rate limiting is off")
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("redis not reachable, rate limiter will fail open", "addr", cfg.Redis.GetAddr(), "error", err)
		return redisClient
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient
}

// ============================================================
// Section 2: Auth - JWT, casbin policies, middlewares
// ============================================================

func (c *Container) initAuth() error {
	cfg := c.cfg
	log := c.log

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log.Named("auth"))

	enforcer, err := permission.NewEnforcer(c.db, log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.SeedDefaultPolicies(enforcer, log); err != nil {
		return err
	}
	c.enforcer = enforcer
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, log.Named("permission"))

	var limiter ratelimit.RateLimiter
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis)
	}
	c.markReadLimiter = middleware.NewRateLimiter(
		limiter,
		"mark_read",
		cfg.RateLimit.MarkReadPerMinute,
		time.Minute,
		log.Named("ratelimit"),
	)

	return nil
}

// ============================================================
// Section 3: Announcements - application service, handlers
// ============================================================

func (c *Container) initAnnouncements() {
	cfg := c.cfg
	log := c.log

	c.announcementService = announcementApp.NewService(announcementApp.Dependencies{
		Announcements: c.repos.announcementRepo,
		ReadState:     c.repos.readStateRepo,
		Markers:       c.repos.readMarkerRepo,
		Transactor:    c.repos.txManager,
		Sanitizer:     content.NewSanitizer(),
		Options: usecases.Options{
			UnreadCap: cfg.Announcement.UnreadCap,
			MaxBulk:   cfg.Announcement.MaxBulk,
			ListOrder: announcement.ListOrder(cfg.Announcement.ListOrder),
		},
		Logger: log.Named("announcement"),
	})

	c.hdlrs = &allHandlers{
		healthHandler:            handlers.NewHealthHandler(dbPinger{c.db}, log),
		announcementHandler:      handlers.NewAnnouncementHandler(c.announcementService, log.Named("handler")),
		adminAnnouncementHandler: adminHandlers.NewAnnouncementHandler(c.announcementService, log.Named("admin")),
	}
}

// dbPinger checks the pool behind a gorm handle.
type dbPinger struct {
	db *gorm.DB
}

func (p dbPinger) PingContext(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
