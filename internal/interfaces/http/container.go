// Package http wires the application together and exposes it as a gin
// engine.
package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"campusdesk/internal/application/eventhandlers"
	"campusdesk/internal/domain/shared/events"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/infrastructure/config"
	"campusdesk/internal/infrastructure/email"
	"campusdesk/internal/infrastructure/permission"
	"campusdesk/internal/infrastructure/ratelimit"
	"campusdesk/internal/infrastructure/scheduler"
	"campusdesk/internal/infrastructure/services"
	"campusdesk/internal/interfaces/http/middleware"
	"campusdesk/internal/shared/constants"
	"campusdesk/internal/shared/logger"
)

// frontendEndpointName is the registered endpoint event-driven
// callbacks are delivered to. Admins register it via the callback API.
const frontendEndpointName = "frontend"

// Container holds infrastructure components, repositories, use cases,
// handlers and background services. It wires everything together and
// provides Shutdown for graceful termination.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter
	rateLimitBackend     ratelimit.RateLimiter

	jwtSvc         *auth.JWTService
	hasher         *auth.BcryptPasswordHasher
	enforcer       *permission.Enforcer
	hub            *services.Hub
	emailSvc       *email.SMTPEmailService
	frontendClient *services.FrontendClient

	dispatcher       *events.InMemoryEventDispatcher
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer wires all dependencies together. The returned container
// is fully routed but background services are not running until Start.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}
	// Audit entries record ClientIP, which resolves through this header
	// when the app sits behind the campus reverse proxy.
	c.engine.RemoteIPHeaders = []string{constants.HeaderXForwardedFor}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initUseCases()
	if err := c.initEventHandlers(); err != nil {
		return nil, err
	}
	if err := c.initScheduler(); err != nil {
		return nil, err
	}
	c.initHandlers()
	c.setupRouter()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})
	c.rateLimitBackend = ratelimit.NewRedisRateLimiter(c.redis)

	c.jwtSvc = auth.NewJWTService(
		c.cfg.Auth.JWT.Secret,
		c.cfg.Auth.JWT.AccessExpMinutes,
		c.cfg.Auth.JWT.RefreshExpDays,
	)
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}
	if err := permission.SeedDefaultPolicies(enforcer, c.log); err != nil {
		return fmt.Errorf("failed to seed permission policies: %w", err)
	}
	c.enforcer = enforcer

	c.hub = services.NewHub(c.log)
	c.emailSvc = email.NewSMTPEmailService(c.cfg.Email, c.log)

	c.dispatcher = events.NewInMemoryEventDispatcher(100, c.log)
	return nil
}

func (c *Container) initEventHandlers() error {
	notifier := eventhandlers.NewNotificationHandler(c.repos.notifications, c.repos.users, c.hub, c.emailSvc, c.log)
	auditor := eventhandlers.NewAuditHandler(c.ucs.recordAuditEntry, c.log)
	activity := eventhandlers.NewActivityHandler(c.ucs.recordActivity, c.log)
	dashboard := eventhandlers.NewDashboardHandler(c.repos.snapshots, c.log)
	callbacks := eventhandlers.NewCallbackHandler(c.ucs.triggerCallback, frontendEndpointName, c.log)

	return eventhandlers.RegisterAll(c.dispatcher, notifier, auditor, activity, dashboard, callbacks)
}

func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	retryInterval := time.Duration(c.cfg.Callback.RetryIntervalMins) * time.Minute
	if err := manager.RegisterCallbackRetryJob(c.ucs.retryPendingCalls, retryInterval); err != nil {
		return fmt.Errorf("failed to register callback retry job: %w", err)
	}
	if err := manager.RegisterDailyRollupJob(c.ucs.dailyRollup); err != nil {
		return fmt.Errorf("failed to register daily rollup job: %w", err)
	}

	c.schedulerManager = manager
	return nil
}

// Engine exposes the routed gin engine for the HTTP server.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Start launches background services: the event dispatcher and the
// scheduler.
func (c *Container) Start() error {
	if err := c.dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start event dispatcher: %w", err)
	}
	c.schedulerManager.Start()
	return nil
}

// Shutdown stops background services and releases shared resources.
func (c *Container) Shutdown() {
	if err := c.schedulerManager.Stop(); err != nil {
		c.log.Errorw("failed to stop scheduler", "error", err)
	}
	if err := c.dispatcher.Stop(); err != nil {
		c.log.Errorw("failed to stop event dispatcher", "error", err)
	}
	if err := c.redis.Close(); err != nil {
		c.log.Errorw("failed to close redis client", "error", err)
	}
}
