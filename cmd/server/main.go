package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"content-platform/internal/config"
	"content-platform/internal/handler"
	"content-platform/internal/infrastructure/database"
	"content-platform/internal/logger"
	"content-platform/internal/metrics"
	"content-platform/internal/middleware"
	"content-platform/internal/rating"
	"content-platform/internal/repository"
	"content-platform/internal/service"
	"content-platform/internal/validator"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	poolConfig := database.PoolConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Database: cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		PoolLimits: database.PoolLimits{
			MaxConns:          cfg.DBMaxConns,
			MinConns:          cfg.DBMinConns,
			MaxConnLifetime:   cfg.DBMaxConnLifetime,
			MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
			HealthCheckPeriod: cfg.DBHealthCheckPeriod,
		},
	}

	if cfg.MigrateOnStart {
		schemaVersion, err := database.Migrate(cfg.MigrationsPath, poolConfig.URL())
		if err != nil {
			logger.Fatal("Failed to apply migrations",
				slog.String("error", err.Error()))
		}
		logger.Info("Database schema up to date", slog.Uint64("version", uint64(schemaVersion)))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	ratingConfig, err := rating.LoadConfig(cfg.RatingConfigPath)
	if err != nil {
		logger.Fatal("Failed to load rating configuration",
			slog.String("error", err.Error()))
	}
	engine := rating.NewEngine(ratingConfig.WithStalenessWindow(cfg.RatingStalenessWindow))

	// Initialize repositories
	principalRepo := repository.NewPostgresPrincipalRepository(pool)
	subscriptionRepo := repository.NewPostgresSubscriptionRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	reportRepo := repository.NewPostgresReportRepository(pool)

	v := validator.NewValidator()
	listing := service.ArticleConfig{
		LatestLimit:     cfg.LatestArticlesLimit,
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	}

	// Initialize services
	identityService := service.NewIdentityService(principalRepo, subscriptionRepo, articleRepo, v)
	subscriptionService := service.NewSubscriptionService(principalRepo, subscriptionRepo, v)
	articleService := service.NewArticleService(articleRepo, commentRepo, engine, v, listing)
	voteService := service.NewVoteService(articleRepo, engine, v)
	commentService := service.NewCommentService(articleRepo, commentRepo, principalRepo, v)
	reportService := service.NewReportService(reportRepo, articleRepo, v, listing)

	healthHandler := handler.NewHealthHandler(pool, version)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(middleware.Authenticate(identityService))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.RegisterRoutes(router, handler.Handlers{
		Identity:      handler.NewIdentityHandler(identityService),
		Subscriptions: handler.NewSubscriptionHandler(subscriptionService),
		Articles:      handler.NewArticleHandler(articleService),
		Votes:         handler.NewVoteHandler(voteService),
		Comments:      handler.NewCommentHandler(commentService),
		Reports:       handler.NewReportHandler(reportService),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
