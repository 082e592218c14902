package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bootcamp-api/internal/cache"
	"bootcamp-api/internal/config"
	"bootcamp-api/internal/database"
	"bootcamp-api/internal/geocoding"
	"bootcamp-api/internal/handler"
	"bootcamp-api/internal/mailer"
	"bootcamp-api/internal/queue"
	"bootcamp-api/internal/repository"
	"bootcamp-api/internal/router"
	"bootcamp-api/internal/service"
	"bootcamp-api/internal/stats"
	"bootcamp-api/internal/storage"
	"bootcamp-api/internal/validator"
	"bootcamp-api/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Bootcamp API
// @version         1.0
// @description     A REST API for a bootcamp directory built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Geocoder (MapQuest, results cached in Redis)
	geocoder := geocoding.NewMapQuestGeocoder(cfg.GeocoderAPIKey, redisCache)

	// SMTP mailer for password reset emails
	smtpMailer := mailer.NewSMTPMailer(cfg)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	bootcampRepo := repository.NewBootcampRepository(mongoDB.Database)
	courseRepo := repository.NewCourseRepository(mongoDB.Database)
	reviewRepo := repository.NewReviewRepository(mongoDB.Database)

	// Aggregate recalculation: queue and worker pool
	statsService := stats.NewService(courseRepo, reviewRepo, bootcampRepo)
	statsQueue := queue.NewMemoryQueue(100)
	statsProcessor := queue.NewProcessor(statsQueue, statsService, 2)
	statsNotifier := stats.NewQueueNotifier(statsQueue)

	// Service layer
	authService := service.NewAuthService(userRepo, jwtManager, smtpMailer)
	bootcampService := service.NewBootcampService(bootcampRepo, courseRepo, geocoder, s3Client, statsNotifier, cfg.MaxFileUpload)
	courseService := service.NewCourseService(courseRepo, bootcampRepo, statsNotifier)
	reviewService := service.NewReviewService(reviewRepo, bootcampRepo, statsNotifier)
	userService := service.NewUserService(userRepo)

	// Handler layer
	cookieMaxAge := int(cfg.JWTCookieExpiry / time.Second)
	secureCookie := cfg.GinMode == gin.ReleaseMode
	authHandler := handler.NewAuthHandler(authService, cookieMaxAge, secureCookie)
	bootcampHandler := handler.NewBootcampHandler(bootcampService)
	courseHandler := handler.NewCourseHandler(courseService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	userHandler := handler.NewUserHandler(userService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:     authHandler,
		BootcampHandler: bootcampHandler,
		CourseHandler:   courseHandler,
		ReviewHandler:   reviewHandler,
		UserHandler:     userHandler,
		JWTManager:      jwtManager,
		UserRepo:        userRepo,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start stats processor
	statsProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop stats processor (waits for workers)
	log.Println("Stopping stats processor...")
	statsProcessor.Stop()

	log.Println("Server shutdown complete")
}
