package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	_ "github.com/cv360/marketplace/docs"
	"github.com/cv360/marketplace/internal/api/handler"
	"github.com/cv360/marketplace/internal/api/middleware"
	"github.com/cv360/marketplace/internal/core/domain"
	"github.com/cv360/marketplace/internal/core/ports"
)

// loginRateLimit caps credential-guessing attempts per client IP.
const loginRateLimit = rate.Limit(5)

// Dependencies carries everything the router needs. Services are built in
// cmd/api so the stats scheduler can share the AdminService instance.
type Dependencies struct {
	AuthService        ports.AuthService
	JobService         ports.JobService
	ApplicationService ports.ApplicationService
	AdminService       ports.AdminService

	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("cv360"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	jobHandler := handler.NewJobHandler(deps.JobService)
	applicationHandler := handler.NewApplicationHandler(deps.ApplicationService)
	adminHandler := handler.NewAdminHandler(deps.AdminService)

	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes (rate limited, no token required) ---
	authGroup := e.Group("/api/auth")
	authGroup.Use(echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStore(loginRateLimit)))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// --- Authenticated API ---
	apiGroup := e.Group("/api", authMiddleware)
	apiGroup.GET("/profile", authHandler.Profile)
	apiGroup.GET("/jobs", jobHandler.List)
	apiGroup.POST("/jobs", jobHandler.Create, middleware.RBAC(domain.RoleEmployer))
	apiGroup.POST("/applications", applicationHandler.Apply, middleware.RBAC(domain.RoleWorker))

	adminGroup := apiGroup.Group("/admin", middleware.RBAC(domain.RoleAdmin))
	adminGroup.GET("/stats", adminHandler.Stats)
	adminGroup.GET("/users", adminHandler.Users)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
