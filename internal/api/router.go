package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/charactervault/character-api/internal/api/handler"
	"github.com/charactervault/character-api/internal/api/middleware"
	"github.com/charactervault/character-api/internal/core/domain"
	"github.com/charactervault/character-api/internal/core/ports"
	"github.com/charactervault/character-api/internal/infrastructure/http/handlers"
)

// Services bundles the constructed core services the router wires up.
type Services struct {
	Tokens     ports.TokenService
	Auth       ports.AuthService
	Characters ports.CharacterService
	UserAdmin  ports.UserAdminService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("characterapi"))

	authHandler := handler.NewAuthHandler(svc.Auth)
	characterHandler := handler.NewCharacterHandler(svc.Characters)
	adminHandler := handler.NewAdminHandler(svc.UserAdmin)

	authenticated := middleware.Auth(svc.Tokens)
	staffOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleEmployee)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/reset-password", authHandler.ResetPassword)
	auth.PUT("/update-account", authHandler.UpdateAccount, authenticated)

	// --- Character routes: reads are public, mutations are staff-only ---
	characters := e.Group("/api/characters")
	characters.GET("", characterHandler.List)
	characters.GET("/:id", characterHandler.Get)
	characters.POST("", characterHandler.Create, authenticated, staffOnly)
	characters.PUT("/:id", characterHandler.Update, authenticated, staffOnly)
	characters.DELETE("/:id", characterHandler.Delete, authenticated, staffOnly)

	// --- Admin routes ---
	admin := e.Group("/api/admin", authenticated, adminOnly)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.UpdateRole)
	admin.PUT("/users/:id/status", adminHandler.UpdateStatus)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
