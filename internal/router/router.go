// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "bootcamp-api/swagger" // Import generated swagger docs

	"bootcamp-api/internal/handler"
	"bootcamp-api/internal/middleware"
	"bootcamp-api/internal/models"
	"bootcamp-api/internal/repository"
	"bootcamp-api/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler     *handler.AuthHandler
	BootcampHandler *handler.BootcampHandler
	CourseHandler   *handler.CourseHandler
	ReviewHandler   *handler.ReviewHandler
	UserHandler     *handler.UserHandler
	JWTManager      *auth.JWTManager
	UserRepo        repository.UserRepository
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	protect := middleware.Protect(cfg.JWTManager, cfg.UserRepo)
	publishers := middleware.Authorize(models.RolePublisher, models.RoleAdmin)
	reviewers := middleware.Authorize(models.RoleUser, models.RoleAdmin)
	admins := middleware.Authorize(models.RoleAdmin)

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.GET("/logout", cfg.AuthHandler.Logout)
			authRoutes.POST("/forgotpassword", cfg.AuthHandler.ForgotPassword)
			authRoutes.PUT("/resetpassword/:resettoken", cfg.AuthHandler.ResetPassword)
		}

		// Auth routes (protected)
		authProtected := api.Group("/auth")
		authProtected.Use(protect)
		{
			authProtected.GET("/me", cfg.AuthHandler.GetMe)
			authProtected.PUT("/updatedetails", cfg.AuthHandler.UpdateDetails)
			authProtected.PUT("/updatepassword", cfg.AuthHandler.UpdatePassword)
		}

		// Bootcamp routes; writes require the publisher or admin role
		bootcamps := api.Group("/bootcamps")
		{
			bootcamps.GET("", cfg.BootcampHandler.List)
			bootcamps.GET("/radius/:zipcode/:distance", cfg.BootcampHandler.WithinRadius)
			bootcamps.GET("/:id", cfg.BootcampHandler.Get)
			bootcamps.POST("", protect, publishers, cfg.BootcampHandler.Create)
			bootcamps.PUT("/:id", protect, publishers, cfg.BootcampHandler.Update)
			bootcamps.DELETE("/:id", protect, publishers, cfg.BootcampHandler.Delete)
			bootcamps.PUT("/:id/photo", protect, publishers, cfg.BootcampHandler.UploadPhoto)

			// Nested resources
			bootcamps.GET("/:id/courses", cfg.CourseHandler.List)
			bootcamps.POST("/:id/courses", protect, publishers, cfg.CourseHandler.Create)
			bootcamps.GET("/:id/reviews", cfg.ReviewHandler.List)
			bootcamps.POST("/:id/reviews", protect, reviewers, cfg.ReviewHandler.Create)
		}

		// Course routes
		courses := api.Group("/courses")
		{
			courses.GET("", cfg.CourseHandler.List)
			courses.GET("/:id", cfg.CourseHandler.Get)
			courses.PUT("/:id", protect, publishers, cfg.CourseHandler.Update)
			courses.DELETE("/:id", protect, publishers, cfg.CourseHandler.Delete)
		}

		// Review routes
		reviews := api.Group("/reviews")
		{
			reviews.GET("", cfg.ReviewHandler.List)
			reviews.GET("/:id", cfg.ReviewHandler.Get)
			reviews.PUT("/:id", protect, reviewers, cfg.ReviewHandler.Update)
			reviews.DELETE("/:id", protect, reviewers, cfg.ReviewHandler.Delete)
		}

		// User management (admin only)
		users := api.Group("/users")
		users.Use(protect, admins)
		{
			users.GET("", cfg.UserHandler.List)
			users.GET("/:id", cfg.UserHandler.Get)
			users.POST("", cfg.UserHandler.Create)
			users.PUT("/:id", cfg.UserHandler.Update)
			users.DELETE("/:id", cfg.UserHandler.Delete)
		}
	}

	return r
}
