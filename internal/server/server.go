// Package server contains the HTTP handlers for the application's API.
package server

import (
	"context"
	"fmt"
	"time"

	"spacedout/internal/cache"
	"spacedout/internal/config"
	"spacedout/internal/database"
	"spacedout/internal/geocode"
	"spacedout/internal/middleware"
	"spacedout/internal/repository"
	"spacedout/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
	commentRepo  repository.CommentRepository
	positionRepo repository.PositionRepository

	authService     *service.AuthService
	userService     *service.UserService
	locationService *service.LocationService
	commentService  *service.CommentService
	positionService *service.PositionService
}

// NewServer creates a server instance, establishing the database and Redis
// connections itself.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	geocoder := geocode.NewNominatimClient(cfg.NominatimURL, cfg.GeocoderAgent)
	return NewServerWithDeps(cfg, db, cache.GetClient(), geocoder)
}

// NewServerWithDeps creates a Server from already-initialized dependencies.
// Used by tests and by any bootstrap layer that manages connections itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, geocoder geocode.Geocoder) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	positionRepo := repository.NewPositionRepository(db)

	prom := middleware.InitMetrics("spacedout-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		userRepo:       userRepo,
		locationRepo:   locationRepo,
		commentRepo:    commentRepo,
		positionRepo:   positionRepo,
	}
	server.authService = service.NewAuthService(userRepo)
	server.userService = service.NewUserService(userRepo, locationRepo)
	server.locationService = service.NewLocationService(locationRepo, geocoder)
	server.commentService = service.NewCommentService(commentRepo, userRepo, locationRepo)
	server.positionService = service.NewPositionService(positionRepo, userRepo)

	return server, nil
}

// CommentService exposes the comment use cases for background maintenance.
func (s *Server) CommentService() *service.CommentService {
	return s.commentService
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	app.Use(middleware.RequestID())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())
	app.Use(middleware.TracingMiddleware())

	// CORS runs before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Spaced Out Metrics Dashboard",
	}))

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/renew", s.RenewSession)

	// Public location browsing
	publicLocations := api.Group("/locations")
	publicLocations.Get("/", s.GetLocations)
	publicLocations.Get("/:id/comments", s.GetLocationComments)
	publicLocations.Get("/:id", s.GetLocation)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	users := protected.Group("/users")
	users.Get("/me", s.GetMyProfile)
	users.Delete("/me", s.DeleteMyAccount)
	users.Get("/me/favorites", s.GetMyFavorites)
	users.Post("/me/favorites/:locationId", s.AddFavorite)
	users.Delete("/me/favorites/:locationId", s.RemoveFavorite)
	users.Get("/", s.GetAllUsers)
	users.Get("/:id", s.GetUserProfile)

	locations := protected.Group("/locations")
	locations.Post("/", s.CreateLocation)
	locations.Delete("/:id", s.DeleteLocation)
	locations.Post("/:id/comments", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_comment"), s.CreateComment)

	comments := protected.Group("/comments")
	comments.Get("/:id", s.GetComment)
	comments.Delete("/:id", s.DeleteComment)

	positions := protected.Group("/positions")
	positions.Post("/", s.RecordPosition)
	positions.Get("/me", s.GetMyPositions)
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	// The cache is optional: readiness only degrades on a database failure.
	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}
