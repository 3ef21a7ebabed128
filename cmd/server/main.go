package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/tsmith4014/gridiron-guru-ai/internal/api"
	"github.com/tsmith4014/gridiron-guru-ai/internal/api/middleware"
	"github.com/tsmith4014/gridiron-guru-ai/internal/engine"
	"github.com/tsmith4014/gridiron-guru-ai/internal/services"
	"github.com/tsmith4014/gridiron-guru-ai/pkg/config"
	"github.com/tsmith4014/gridiron-guru-ai/pkg/database"
	"github.com/tsmith4014/gridiron-guru-ai/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	log := logger.InitLogger("", cfg.IsDevelopment())
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the player board store
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	playerStore := services.NewPlayerStore(db, log)
	if err := playerStore.Migrate(); err != nil {
		log.Fatalf("Failed to migrate player store: %v", err)
	}
	if err := playerStore.SeedDefaultBoard(); err != nil {
		log.Fatalf("Failed to seed player board: %v", err)
	}

	// Optional recommendation cache
	var cacheService *services.CacheService
	if cfg.CacheEnabled {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.WithError(err).Warn("Redis unreachable, running without recommendation cache")
		} else {
			cacheService = services.NewCacheService(redisClient)
			defer redisClient.Close()
		}
	}

	// Value estimator: load or train once at startup, outside the hot
	// path. Scoring falls back to the formula if this fails.
	estimator := engine.NewRegressionEstimator(log)
	if err := estimator.LoadOrTrain(cfg.ModelPath); err != nil {
		log.WithError(err).Warn("Learned estimator unavailable, scoring uses formula fallback")
	}

	weights := engine.Weights{
		Value:    cfg.ValueWeight,
		Need:     cfg.NeedWeight,
		Risk:     cfg.RiskWeight,
		Handcuff: cfg.HandcuffWeight,
		Round:    cfg.RoundWeight,
	}
	scoringEngine := engine.New(estimator, weights, log)

	// Optional scheduled retrain
	var scheduler *cron.Cron
	if cfg.RetrainSchedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.RetrainSchedule, func() {
			if err := estimator.Train(); err != nil {
				log.WithError(err).Warn("Scheduled retrain failed")
				return
			}
			if err := estimator.Save(cfg.ModelPath); err != nil {
				log.WithError(err).Warn("Could not persist retrained bundle")
			}
		})
		if err != nil {
			log.Fatalf("Invalid retrain schedule %q: %v", cfg.RetrainSchedule, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CorsOrigins))
	router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "ok",
			"model_trained": estimator.IsTrained(),
			"time":          time.Now().UTC(),
		})
	})

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, scoringEngine, estimator, playerStore, cacheService, cfg, log)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	log.Info("Server exited")
}
