package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menumatch/internal/config"
	"menumatch/internal/database"
	"menumatch/internal/handlers"
	appmiddleware "menumatch/internal/middleware"
	"menumatch/internal/nlp"
	"menumatch/internal/repositories"
	"menumatch/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load .env file if present (development convenience)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Repositories
	menuRepo := repositories.NewMenuRepository(db)
	standardMenuRepo := repositories.NewStandardMenuRepository(db)
	historyRepo := repositories.NewMatchingHistoryRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)

	// NLP components. Both degrade gracefully: without a dictionary the
	// engine tokenizes on whitespace, without a vector model the embedding
	// stage is skipped.
	var tokenizer nlp.Tokenizer
	dictTokenizer, err := nlp.NewDictionaryTokenizer(cfg.NLP.DictionaryPath)
	if err != nil {
		logger.Warn("noun dictionary unavailable, falling back to whitespace tokenization", "error", err)
	} else {
		tokenizer = dictTokenizer
		logger.Info("noun dictionary loaded",
			"path", dictTokenizer.SourcePath(),
			"entries", dictTokenizer.Size(),
		)
	}

	embedder, err := nlp.NewEmbeddingEngine(cfg.NLP.VectorModelPath)
	if err != nil {
		log.Fatalf("Failed to load vector model: %v", err)
	}
	if embedder.IsLoaded() {
		logger.Info("vector model loaded",
			"path", embedder.ModelPath(),
			"dimension", embedder.Dimension(),
		)
	} else {
		logger.Warn("no vector model loaded, embedding stage disabled")
	}

	// Services
	metrics := services.NewPrometheusMetrics()
	matchingService := services.NewMatchingService(
		standardMenuRepo,
		menuRepo,
		historyRepo,
		tokenizer,
		embedder,
		cfg.NLP.CategoryDefaults,
		metrics,
		logger,
	)
	statsService := services.NewStatsService(menuRepo, standardMenuRepo, logger)
	authService := services.NewAuthService(&cfg.Auth, logger)

	if active, err := standardMenuRepo.ListActive(); err == nil {
		metrics.SetActiveStandardMenus(len(active))
	}

	// Handlers
	menuHandler := handlers.NewMenuHandler(menuRepo, standardMenuRepo, historyRepo, matchingService)
	standardMenuHandler := handlers.NewStandardMenuHandler(standardMenuRepo, menuRepo)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantRepo)
	historyHandler := handlers.NewHistoryHandler(historyRepo)
	statsHandler := handlers.NewStatsHandler(statsService)
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler

	// Middleware
	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(appmiddleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitPerSec*2))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Health and metrics
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	admin := appmiddleware.RequireAdmin(authService)

	// Authentication
	api.POST("/auth/login", authHandler.Login)

	// Menus
	api.POST("/menus", menuHandler.CreateMenu)
	api.GET("/menus", menuHandler.ListMenus)
	api.GET("/menus/:menuId", menuHandler.GetMenu)
	api.PUT("/menus/:menuId", menuHandler.UpdateMenu)
	api.POST("/menus/:menuId/rematch", menuHandler.RematchMenu)
	api.POST("/menus/:menuId/verify", menuHandler.VerifyMatch, admin)
	api.POST("/menus/rematch-unmatched", menuHandler.RematchUnmatched, admin)

	// Standard menu catalog; mutations require the admin token
	api.GET("/standard-menus", standardMenuHandler.ListStandardMenus)
	api.GET("/standard-menus/:standardMenuId", standardMenuHandler.GetStandardMenu)
	api.GET("/standard-menus/:standardMenuId/menus", standardMenuHandler.GetStandardMenuMenus)
	api.POST("/standard-menus", standardMenuHandler.CreateStandardMenu, admin)
	api.PUT("/standard-menus/:standardMenuId", standardMenuHandler.UpdateStandardMenu, admin)
	api.DELETE("/standard-menus/:standardMenuId", standardMenuHandler.DeleteStandardMenu, admin)

	// Restaurants
	api.GET("/restaurants", restaurantHandler.ListRestaurants)
	api.GET("/restaurants/:restaurantId", restaurantHandler.GetRestaurant)
	api.POST("/restaurants", restaurantHandler.CreateRestaurant)

	// Matching history and stats
	api.GET("/matching-history", historyHandler.ListHistory)
	api.GET("/stats", statsHandler.GetStats)

	// Start server
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}
