package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"seatgrid/internal/availability"
	"seatgrid/internal/events"
	"seatgrid/internal/inventory"
	"seatgrid/internal/reservations"
	"seatgrid/internal/shared/clock"
	"seatgrid/internal/shared/config"
	"seatgrid/internal/shared/database"
	"seatgrid/internal/shared/middleware"
	"seatgrid/internal/tenants"
	"seatgrid/internal/venues"
	"seatgrid/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	clk       clock.Clock
	publisher reservations.Publisher
}

// NewRouter creates a new router instance. The publisher may be nil when the
// broker is disabled.
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, clk clock.Clock, publisher reservations.Publisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		cache:     cacheService,
		clk:       clk,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group(r.config.GetAPIBasePath())
	{
		tenantRepo := tenants.NewRepository(r.db.PostgreSQL)
		tenantService := tenants.NewService(tenantRepo)

		// Holds accept either an end-user bearer token or a tenant
		// backend's API key.
		protected := api.Group("")
		protected.Use(authenticate(r.config, tenantService))

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(r.config), middleware.RequireAdmin())

		r.setupVenueAndEventRoutes(api, admin)
		r.setupReservationRoutes(protected)
		tenants.RegisterRoutes(admin, tenants.NewController(tenantService))
	}
}

// authenticate admits a caller through JWT or, when an API key header is
// present, through tenant API-key verification.
func authenticate(cfg *config.Config, tenantService tenants.Service) gin.HandlerFunc {
	jwtAuth := middleware.JWTAuth(cfg)
	apiKeyAuth := tenants.APIKeyAuth(tenantService)
	return func(c *gin.Context) {
		if c.GetHeader(tenants.HeaderAPIKey) != "" {
			apiKeyAuth(c)
			return
		}
		jwtAuth(c)
	}
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "seatgrid",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "seatgrid",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupVenueAndEventRoutes mounts the unauthenticated read surface, the seat
// map views, and the admin mutations for venues and events.
func (r *Router) setupVenueAndEventRoutes(public, admin *gin.RouterGroup) {
	venueRepo := venues.NewRepository(r.db.PostgreSQL)
	venueService := venues.NewService(venueRepo, r.cache)
	venues.RegisterRoutes(public, admin, venues.NewController(venueService))

	eventRepo := events.NewRepository(r.db.PostgreSQL)
	eventService := events.NewService(eventRepo, r.cache)
	events.RegisterRoutes(public, admin, events.NewController(eventService))

	availabilityService := availability.NewService(
		venueRepo,
		eventRepo,
		inventory.NewRepository(r.db.PostgreSQL),
		r.clk,
		r.cache,
	)
	availability.RegisterRoutes(public, availability.NewController(availabilityService))
}

func (r *Router) setupReservationRoutes(rg *gin.RouterGroup) {
	repo := reservations.NewRepository(r.db.PostgreSQL)
	service := reservations.NewService(repo, r.config, r.clk, r.cache, r.publisher)
	reservations.RegisterRoutes(rg, reservations.NewController(service))
}
