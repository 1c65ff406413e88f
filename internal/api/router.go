package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mercadito/marketplace-api/internal/api/handler"
	"github.com/mercadito/marketplace-api/internal/api/middleware"
	"github.com/mercadito/marketplace-api/internal/core/service"
	mongodb "github.com/mercadito/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mercadito/marketplace-api/internal/infrastructure/db/redis"
	"github.com/mercadito/marketplace-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Which endpoints require a session is decided here and nowhere else.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	deliveryRepo := mongodb.NewDeliveryRepository(db)
	categoryCache := redisdb.NewCategoryCache(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, tokenTTL)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, userRepo, categoryCache, log)
	deliveryService := service.NewDeliveryService(deliveryRepo, userRepo, log)

	userHandler := handler.NewUserHandler(authService, userService, tokenTTL)
	productHandler := handler.NewProductHandler(productService)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService)
	auth := middleware.Auth(jwtSecret)

	// --- User routes ---
	e.POST("/user/signup", userHandler.Signup)
	e.POST("/user/login", userHandler.Login)
	e.GET("/user/:id", userHandler.Get)
	e.PUT("/user/:id", userHandler.Update, auth)
	e.DELETE("/user/:id", userHandler.Delete, auth)

	// --- Product routes (reads are public, writes are session-gated) ---
	e.GET("/product", productHandler.List)
	e.GET("/product/:id", productHandler.Get)
	e.GET("/product/categories/:id", productHandler.Categories)
	e.POST("/product", productHandler.Create, auth)
	e.PUT("/product/:id", productHandler.Update, auth)
	e.DELETE("/product/:id", productHandler.Delete, auth)

	// --- Delivery routes (all session-gated) ---
	delivery := e.Group("/delivery", auth)
	delivery.POST("", deliveryHandler.Create)
	delivery.GET("", deliveryHandler.List)
	delivery.GET("/:id", deliveryHandler.Get)
	delivery.PUT("/:id", deliveryHandler.Update)

	// --- Observability (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
