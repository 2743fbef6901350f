package main

import (
	"fmt"
	"log"
	"os"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"REDIS_URL",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	// Initialize JWT
	utils.InitJWT()
	// Initialize MongoDB connection
	utils.InitMongoClient()
}

func setupRouter() *gin.Engine {
	// Create default gin router
	router := gin.Default()

	redisCfg := config.LoadRedisConfig()

	// Change feed transport (Redis pub/sub, one channel per user)
	feed, err := services.NewChangeFeed(redisCfg)
	if err != nil {
		log.Fatalf("Failed to initialize change feed: %v", err)
	}
	services.ChangeFeed = feed

	// Token blacklist for sign-out
	blacklist, err := services.NewTokenBlacklist(redisCfg)
	if err != nil {
		log.Fatalf("Failed to initialize token blacklist: %v", err)
	}
	services.TokenBlacklist = blacklist

	// Initialize repositories and services
	bookmarksRepo := repository.GetBookmarksRepo(utils.MongoClient)

	if err := repository.SetupIndexes(utils.MongoClient.Database(os.Getenv("MONGO_DB"))); err != nil {
		log.Printf("Failed to set up indexes: %v", err)
	}

	bookmarksService := &usecase.BookmarksService{
		BookmarksRepo: bookmarksRepo,
		Feed:          feed,
	}

	titleFetcher := services.NewTitleFetcher()
	statsHandler := handler.NewStatsHandler(bookmarksRepo)

	// Global middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	// Observability endpoints (no authentication required)
	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		// User chrome (identity comes from the external provider's token)
		user := protected.Group("/user")
		{
			user.GET("/profile", handler.GetUserProfileHandler)
			user.POST("/logout", handler.LogoutHandler)
		}

		// Bookmarks endpoints
		bookmarks := protected.Group("/bookmarks")
		{
			bookmarks.GET("/", func(c *gin.Context) {
				handler.GetUserBookmarksHandler(c, bookmarksService)
			})
			bookmarks.POST("/", func(c *gin.Context) {
				handler.CreateBookmarkHandler(c, bookmarksService)
			})
			bookmarks.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteBookmarkHandler(c, bookmarksService)
			})
			bookmarks.GET("/tags", func(c *gin.Context) {
				handler.GetUserTagsHandler(c, bookmarksService)
			})
		}

		// Realtime sync (one session per connected socket)
		protected.GET("/sync/ws", func(c *gin.Context) {
			handler.SyncHandler(c, bookmarksService, feed)
		})

		// Title prefill for the creation form; responses are cacheable
		// since the title is a pure function of the URL
		protected.GET("/fetch-title",
			middleware.CacheControlMiddleware("300"),
			func(c *gin.Context) {
				handler.FetchTitleHandler(c, titleFetcher)
			})

		protected.GET("/stats", statsHandler.GetUserStats)
	}

	return router
}

func main() {
	// Set up router
	router := setupRouter()

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
