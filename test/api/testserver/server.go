//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"bootcamp-api/internal/cache"
	"bootcamp-api/internal/handler"
	"bootcamp-api/internal/repository"
	"bootcamp-api/internal/router"
	"bootcamp-api/internal/service"
	"bootcamp-api/internal/stats"
	"bootcamp-api/internal/storage"
	"bootcamp-api/pkg/auth"
	"bootcamp-api/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the token expiry time used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestCookieMaxAge is the token cookie lifetime in seconds.
	TestCookieMaxAge = 900
	// TestMaxFileUpload is the photo upload size limit used in tests.
	TestMaxFileUpload = 1 << 20
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo     repository.UserRepository
	BootcampRepo repository.BootcampRepository
	CourseRepo   repository.CourseRepository
	ReviewRepo   repository.ReviewRepository

	// Services (for direct service access in tests)
	AuthService     service.AuthServicer
	BootcampService service.BootcampServicer
	CourseService   service.CourseServicer
	ReviewService   service.ReviewServicer
	UserService     service.UserServicer

	// Auth
	JWTManager *auth.JWTManager

	// Cache backed by the Redis container
	Cache cache.Cache

	// Test doubles for external integrations
	Geocoder *StubGeocoder
	Mailer   *CaptureMailer
}

// New creates a new test server with all dependencies wired up. External
// HTTP integrations (geocoding, SMTP) are stubbed; everything else runs
// against real containers. Aggregate recomputation runs synchronously so
// tests can assert on averages without polling.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Create cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// Create storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

	// Stubbed external integrations
	geocoder := NewStubGeocoder()
	captureMailer := NewCaptureMailer()

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	bootcampRepo := repository.NewBootcampRepository(mongoDB.Database)
	courseRepo := repository.NewCourseRepository(mongoDB.Database)
	reviewRepo := repository.NewReviewRepository(mongoDB.Database)

	// Synchronous aggregate recomputation
	statsService := stats.NewService(courseRepo, reviewRepo, bootcampRepo)
	statsNotifier := stats.NewSyncNotifier(statsService)

	// Service layer
	authService := service.NewAuthService(userRepo, jwtManager, captureMailer)
	bootcampService := service.NewBootcampService(bootcampRepo, courseRepo, geocoder, s3Client, statsNotifier, TestMaxFileUpload)
	courseService := service.NewCourseService(courseRepo, bootcampRepo, statsNotifier)
	reviewService := service.NewReviewService(reviewRepo, bootcampRepo, statsNotifier)
	userService := service.NewUserService(userRepo)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService, TestCookieMaxAge, false)
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

	return &TestServer{
		Router:          r,
		MongoDB:         mongoDB,
		Redis:           redisContainer,
		MinIO:           minioContainer,
		UserRepo:        userRepo,
		BootcampRepo:    bootcampRepo,
		CourseRepo:      courseRepo,
		ReviewRepo:      reviewRepo,
		AuthService:     authService,
		BootcampService: bootcampService,
		CourseService:   courseService,
		ReviewService:   reviewService,
		UserService:     userService,
		JWTManager:      jwtManager,
		Cache:           redisCache,
		Geocoder:        geocoder,
		Mailer:          captureMailer,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
